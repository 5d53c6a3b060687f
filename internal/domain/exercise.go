package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseCategory classifies a catalog entry.
type ExerciseCategory string

const (
	CategoryStrength ExerciseCategory = "strength"
	CategoryCardio   ExerciseCategory = "cardio"
	CategorySwimming ExerciseCategory = "swimming"
	CategoryCycling  ExerciseCategory = "cycling"
)

// MuscleGroup names the primary muscles an exercise targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleBiceps    MuscleGroup = "Biceps"
	MuscleTriceps   MuscleGroup = "Triceps"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleCore      MuscleGroup = "Core"
	MuscleFullBody  MuscleGroup = "Full Body"
)

// Difficulty levels shared by exercises and workouts.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a catalog entry, either seeded by the system or authored by a
// user (IsCustom). Favorites is the set of users who starred it.
type Exercise struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Category     ExerciseCategory     `bson:"category" json:"category"`
	MuscleGroup  MuscleGroup          `bson:"muscleGroup" json:"muscleGroup"`
	Difficulty   Difficulty           `bson:"difficulty" json:"difficulty"`
	Description  string               `bson:"description" json:"description"`
	Instructions string               `bson:"instructions" json:"instructions"`
	Equipment    string               `bson:"equipment,omitempty" json:"equipment,omitempty"`
	VideoURL     string               `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedBy    primitive.ObjectID   `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	IsCustom     bool                 `bson:"isCustom" json:"isCustom"`
	Favorites    []primitive.ObjectID `bson:"favorites,omitempty" json:"favorites,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsFavoritedBy reports whether the user has starred this exercise.
func (e *Exercise) IsFavoritedBy(userID primitive.ObjectID) bool {
	for _, id := range e.Favorites {
		if id == userID {
			return true
		}
	}
	return false
}

// AddFavorite adds the user to the favorite set. Adding a user already
// present is a no-op.
func (e *Exercise) AddFavorite(userID primitive.ObjectID) {
	if e.IsFavoritedBy(userID) {
		return
	}
	e.Favorites = append(e.Favorites, userID)
}

// RemoveFavorite removes the user from the favorite set. Removing a user
// not present is a no-op.
func (e *Exercise) RemoveFavorite(userID primitive.ObjectID) {
	kept := e.Favorites[:0]
	for _, id := range e.Favorites {
		if id != userID {
			kept = append(kept, id)
		}
	}
	e.Favorites = kept
}
