package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateWorkoutDerivesCalories(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name:       "Morning run",
		Type:       domain.WorkoutCardio,
		Duration:   30,
		Difficulty: domain.DifficultyIntermediate,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}
	if workout.CaloriesBurned != 240 {
		t.Fatalf("CaloriesBurned = %d, want 240", workout.CaloriesBurned)
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	t.Parallel()
	svc := NewWorkoutService(newFakeWorkoutRepo(), nil)
	userID := primitive.NewObjectID()

	tests := []struct {
		name  string
		input WorkoutInput
		field string
	}{
		{
			name:  "zero duration",
			input: WorkoutInput{Name: "x", Type: domain.WorkoutCardio, Duration: 0, Difficulty: domain.DifficultyBeginner},
			field: "duration",
		},
		{
			name:  "unknown type",
			input: WorkoutInput{Name: "x", Type: "yoga", Duration: 20, Difficulty: domain.DifficultyBeginner},
			field: "type",
		},
		{
			name:  "empty name",
			input: WorkoutInput{Name: "", Type: domain.WorkoutCardio, Duration: 20, Difficulty: domain.DifficultyBeginner},
			field: "name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWorkout(context.Background(), userID, tt.input)
			var valErr *validation.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("CreateWorkout() error = %v, want ValidationError", err)
			}
			if valErr.Field != tt.field {
				t.Fatalf("offending field = %q, want %q", valErr.Field, tt.field)
			}
		})
	}
}

func TestUpdateWorkoutRederivesOnDurationChange(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Lift", Type: domain.WorkoutStrength, Duration: 40, Difficulty: domain.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}
	if workout.CaloriesBurned != 200 {
		t.Fatalf("initial CaloriesBurned = %d, want 200", workout.CaloriesBurned)
	}

	updated, err := svc.UpdateWorkout(context.Background(), userID, workout.ID, map[string]any{"duration": 60.0})
	if err != nil {
		t.Fatalf("UpdateWorkout() error = %v", err)
	}
	if updated.CaloriesBurned != 300 {
		t.Fatalf("CaloriesBurned after duration change = %d, want 300", updated.CaloriesBurned)
	}

	updated, err = svc.UpdateWorkout(context.Background(), userID, workout.ID, map[string]any{"type": "hiit"})
	if err != nil {
		t.Fatalf("UpdateWorkout() error = %v", err)
	}
	if updated.CaloriesBurned != 600 {
		t.Fatalf("CaloriesBurned after type change = %d, want 600", updated.CaloriesBurned)
	}
}

func TestUpdateWorkoutNotesOnlyKeepsCalories(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Stretch", Type: domain.WorkoutFlexibility, Duration: 20, Difficulty: domain.DifficultyBeginner,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	updated, err := svc.UpdateWorkout(context.Background(), userID, workout.ID, map[string]any{"notes": "felt good"})
	if err != nil {
		t.Fatalf("UpdateWorkout() error = %v", err)
	}
	if updated.CaloriesBurned != workout.CaloriesBurned {
		t.Fatalf("CaloriesBurned changed on notes-only update: %d -> %d", workout.CaloriesBurned, updated.CaloriesBurned)
	}
	if updated.Notes != "felt good" {
		t.Fatalf("Notes = %q, want %q", updated.Notes, "felt good")
	}
}

func TestUpdateWorkoutRejectsDisallowedField(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Lift", Type: domain.WorkoutStrength, Duration: 40, Difficulty: domain.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	_, err = svc.UpdateWorkout(context.Background(), userID, workout.ID, map[string]any{"owner": "someone-else"})
	var opErr *validation.InvalidOperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("UpdateWorkout() error = %v, want InvalidOperationError", err)
	}
	if opErr.Field != "owner" {
		t.Fatalf("offending field = %q, want owner", opErr.Field)
	}
}

func TestWorkoutOwnerScoping(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), owner, WorkoutInput{
		Name: "Lift", Type: domain.WorkoutStrength, Duration: 40, Difficulty: domain.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	if _, err := svc.GetWorkout(context.Background(), stranger, workout.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("GetWorkout() as stranger error = %v, want ErrWorkoutNotFound", err)
	}
	if err := svc.DeleteWorkout(context.Background(), stranger, workout.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("DeleteWorkout() as stranger error = %v, want ErrWorkoutNotFound", err)
	}
	if _, err := svc.GetWorkout(context.Background(), owner, workout.ID); err != nil {
		t.Fatalf("GetWorkout() as owner error = %v", err)
	}
}

func TestCompleteWorkout(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Intervals", Type: domain.WorkoutHIIT, Duration: 25, Difficulty: domain.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	done, err := svc.CompleteWorkout(context.Background(), userID, workout.ID, 4, "tough one")
	if err != nil {
		t.Fatalf("CompleteWorkout() error = %v", err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("workout not marked completed: %+v", done)
	}
	if done.Rating != 4 || done.Feedback != "tough one" {
		t.Fatalf("rating/feedback = %d/%q, want 4/%q", done.Rating, done.Feedback, "tough one")
	}

	// Completing again without a rating keeps the previous one.
	done, err = svc.CompleteWorkout(context.Background(), userID, workout.ID, 0, "")
	if err != nil {
		t.Fatalf("second CompleteWorkout() error = %v", err)
	}
	if done.Rating != 4 {
		t.Fatalf("rating after zero-rating completion = %d, want 4", done.Rating)
	}
}

func TestCompleteWorkoutRejectsBadRating(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Intervals", Type: domain.WorkoutHIIT, Duration: 25, Difficulty: domain.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	for _, rating := range []int{-1, 6} {
		_, err := svc.CompleteWorkout(context.Background(), userID, workout.ID, rating, "")
		var valErr *validation.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("CompleteWorkout(rating=%d) error = %v, want ValidationError", rating, err)
		}
	}
}

func TestWorkoutStats(t *testing.T) {
	t.Parallel()
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo, nil)
	userID := primitive.NewObjectID()

	day := time.Date(2026, 4, 10, 7, 0, 0, 0, time.UTC)
	for _, in := range []WorkoutInput{
		{Name: "Run", Type: domain.WorkoutCardio, Duration: 30, Difficulty: domain.DifficultyBeginner, Date: day},
		{Name: "Lift", Type: domain.WorkoutStrength, Duration: 40, Difficulty: domain.DifficultyBeginner, Date: day.Add(10 * time.Hour)},
	} {
		if _, err := svc.CreateWorkout(context.Background(), userID, in); err != nil {
			t.Fatalf("CreateWorkout() error = %v", err)
		}
	}

	days, err := svc.Stats(context.Background(), userID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("Stats() returned %d days, want 1", len(days))
	}
	if days[0].Count != 2 || days[0].TotalDuration != 70 || days[0].TotalCalories != 440 {
		t.Fatalf("day stats = %+v, want count 2, duration 70, calories 440", days[0])
	}
}
