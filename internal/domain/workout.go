package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType classifies a logged workout session.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutHIIT        WorkoutType = "hiit"
	WorkoutCustom      WorkoutType = "custom"
)

// ExerciseSet records a single set within a workout exercise entry.
type ExerciseSet struct {
	Reps     int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight   float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty"`
	Notes    string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutExercise pairs a catalog exercise with the sets performed.
type WorkoutExercise struct {
	ExerciseID primitive.ObjectID `bson:"exercise" json:"exercise"`
	Sets       []ExerciseSet      `bson:"sets,omitempty" json:"sets,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout is a logged session owned by one user. CaloriesBurned is derived
// from duration and type and must not be set by callers directly.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user" json:"user"`
	Name           string             `bson:"name" json:"name"`
	Type           WorkoutType        `bson:"type" json:"type"`
	Exercises      []WorkoutExercise  `bson:"exercises,omitempty" json:"exercises,omitempty"`
	Duration       int                `bson:"duration" json:"duration"` // Minutes, >= 1
	CaloriesBurned int                `bson:"caloriesBurned" json:"caloriesBurned"`
	Difficulty     Difficulty         `bson:"difficulty" json:"difficulty"`
	Date           time.Time          `bson:"date" json:"date"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed      bool               `bson:"completed" json:"completed"`
	CompletedAt    *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Rating         int                `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, set on completion
	Feedback       string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CaloriesPerMinute is the fixed burn rate per workout type. The switch is
// exhaustive so a new WorkoutType cannot be added without extending it.
func CaloriesPerMinute(t WorkoutType) int {
	switch t {
	case WorkoutStrength:
		return 5
	case WorkoutCardio:
		return 8
	case WorkoutFlexibility:
		return 3
	case WorkoutHIIT:
		return 10
	case WorkoutCustom:
		return 6
	default:
		return 0
	}
}

// RecalculateCalories rederives CaloriesBurned from duration and type.
// Called whenever either input changes, and only then.
func (w *Workout) RecalculateCalories() {
	w.CaloriesBurned = w.Duration * CaloriesPerMinute(w.Type)
}

// Complete marks the workout as done. Rating and feedback are optional;
// a zero rating leaves any prior rating in place.
func (w *Workout) Complete(rating int, feedback string, now time.Time) {
	w.Completed = true
	w.CompletedAt = &now
	if rating != 0 {
		w.Rating = rating
	}
	if feedback != "" {
		w.Feedback = feedback
	}
}
