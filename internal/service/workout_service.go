package service

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/stats"
	"fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutService manages a user's workout log. Every operation is scoped to
// the owning user.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, patch map[string]any) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
	CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, rating int, feedback string) (*domain.Workout, error)
	Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.WorkoutDay, error)
}

// WorkoutInput carries the fields of a candidate workout.
type WorkoutInput struct {
	Name       string
	Type       domain.WorkoutType
	Exercises  []domain.WorkoutExercise
	Duration   int
	Difficulty domain.Difficulty
	Date       time.Time
	Notes      string
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	notifier    *Notifier
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, notifier *Notifier) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		notifier:    notifier,
	}
}

// CreateWorkout validates the candidate, derives calories and persists it.
func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	fields := map[string]any{
		"name":       input.Name,
		"type":       string(input.Type),
		"duration":   input.Duration,
		"difficulty": string(input.Difficulty),
	}
	if err := validation.Workout.ValidateNew(fields); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:     userID,
		Name:       input.Name,
		Type:       input.Type,
		Exercises:  input.Exercises,
		Duration:   input.Duration,
		Difficulty: input.Difficulty,
		Date:       input.Date,
		Notes:      input.Notes,
	}
	workout.RecalculateCalories()

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID

	s.notifier.Publish(userID)
	return workout, nil
}

// GetWorkout retrieves one workout within the owner's scope.
func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// ListWorkouts lists all of a user's workouts, newest date first.
func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUser(ctx, userID)
}

// UpdateWorkout applies a partial update. Calories are rederived only when
// duration or type changed.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, patch map[string]any) (*domain.Workout, error) {
	if err := validation.Workout.ValidateUpdate(patch); err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	rederive := false
	if v, ok := patch["name"].(string); ok {
		workout.Name = v
	}
	if v, ok := patch["type"].(string); ok {
		workout.Type = domain.WorkoutType(v)
		rederive = true
	}
	if v, ok := patch["duration"]; ok {
		if n, ok := toFloat(v); ok {
			workout.Duration = int(n)
			rederive = true
		}
	}
	if v, ok := patch["difficulty"].(string); ok {
		workout.Difficulty = domain.Difficulty(v)
	}
	if v, ok := patch["exercises"]; ok {
		exercises, err := decodeWorkoutExercises(v)
		if err != nil {
			return nil, err
		}
		workout.Exercises = exercises
	}
	if v, ok := patch["notes"].(string); ok {
		workout.Notes = v
	}
	if rederive {
		workout.RecalculateCalories()
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	s.notifier.Publish(userID)
	return workout, nil
}

// DeleteWorkout removes a workout within the owner's scope.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	s.notifier.Publish(userID)
	return nil
}

// CompleteWorkout marks the workout done with an optional rating/feedback.
func (s *workoutService) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, rating int, feedback string) (*domain.Workout, error) {
	if rating != 0 && (rating < 1 || rating > 5) {
		return nil, &validation.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	workout.Complete(rating, feedback, time.Now().UTC())

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}

	s.notifier.Publish(userID)
	return workout, nil
}

// Stats reduces the user's workouts into the per-day time series.
func (s *workoutService) Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.WorkoutDay, error) {
	workouts, err := s.workoutRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.WorkoutsByDay(workouts), nil
}

// decodeWorkoutExercises converts the JSON shape of an exercises patch into
// domain entries. Malformed entries fail validation rather than persisting
// garbage.
func decodeWorkoutExercises(v any) ([]domain.WorkoutExercise, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, &validation.ValidationError{Field: "exercises", Reason: "must be an array"}
	}
	exercises := make([]domain.WorkoutExercise, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &validation.ValidationError{Field: "exercises", Reason: "entries must be objects"}
		}
		var entry domain.WorkoutExercise
		if idStr, ok := obj["exercise"].(string); ok {
			id, err := primitive.ObjectIDFromHex(idStr)
			if err != nil {
				return nil, &validation.ValidationError{Field: "exercises", Reason: "invalid exercise id"}
			}
			entry.ExerciseID = id
		}
		if notes, ok := obj["notes"].(string); ok {
			entry.Notes = notes
		}
		if sets, ok := obj["sets"].([]any); ok {
			for _, rawSet := range sets {
				setObj, ok := rawSet.(map[string]any)
				if !ok {
					continue
				}
				var set domain.ExerciseSet
				if n, ok := toFloat(setObj["reps"]); ok {
					set.Reps = int(n)
				}
				if n, ok := toFloat(setObj["weight"]); ok {
					set.Weight = n
				}
				if n, ok := toFloat(setObj["duration"]); ok {
					set.Duration = int(n)
				}
				if n, ok := toFloat(setObj["distance"]); ok {
					set.Distance = n
				}
				if notes, ok := setObj["notes"].(string); ok {
					set.Notes = notes
				}
				entry.Sets = append(entry.Sets, set)
			}
		}
		exercises = append(exercises, entry)
	}
	return exercises, nil
}
