package service

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newExerciseInput() ExerciseInput {
	return ExerciseInput{
		Name:        "Bulgarian split squat",
		Category:    domain.CategoryStrength,
		MuscleGroup: domain.MuscleLegs,
		Difficulty:  domain.DifficultyIntermediate,
		Description: "Rear-foot elevated single leg squat.",
	}
}

func TestCreateExercise(t *testing.T) {
	t.Parallel()
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, nil)
	creator := primitive.NewObjectID()

	exercise, err := svc.CreateExercise(context.Background(), creator, newExerciseInput())
	if err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}
	if !exercise.IsCustom {
		t.Fatal("created exercise not marked custom")
	}
	if exercise.CreatedBy != creator {
		t.Fatalf("CreatedBy = %v, want %v", exercise.CreatedBy, creator)
	}
}

func TestCreateExerciseValidation(t *testing.T) {
	t.Parallel()
	svc := NewExerciseService(newFakeExerciseRepo(), nil)
	creator := primitive.NewObjectID()

	input := newExerciseInput()
	input.Description = "too short"
	_, err := svc.CreateExercise(context.Background(), creator, input)
	var valErr *validation.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("CreateExercise() error = %v, want ValidationError", err)
	}
	if valErr.Field != "description" {
		t.Fatalf("offending field = %q, want description", valErr.Field)
	}

	input = newExerciseInput()
	input.MuscleGroup = "Forearms"
	if _, err := svc.CreateExercise(context.Background(), creator, input); !errors.As(err, &valErr) {
		t.Fatalf("CreateExercise() error = %v, want ValidationError on muscleGroup", err)
	}
}

func TestUpdateExerciseCreatorOnly(t *testing.T) {
	t.Parallel()
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, nil)
	creator := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	exercise, err := svc.CreateExercise(context.Background(), creator, newExerciseInput())
	if err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}

	if _, err := svc.UpdateExercise(context.Background(), stranger, exercise.ID, map[string]any{"equipment": "dumbbells"}); !errors.Is(err, ErrExerciseAccessDenied) {
		t.Fatalf("UpdateExercise() as stranger error = %v, want ErrExerciseAccessDenied", err)
	}

	updated, err := svc.UpdateExercise(context.Background(), creator, exercise.ID, map[string]any{"equipment": "dumbbells"})
	if err != nil {
		t.Fatalf("UpdateExercise() as creator error = %v", err)
	}
	if updated.Equipment != "dumbbells" {
		t.Fatalf("equipment = %q, want dumbbells", updated.Equipment)
	}
}

func TestDeleteExerciseCreatorOnly(t *testing.T) {
	t.Parallel()
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, nil)
	creator := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	exercise, err := svc.CreateExercise(context.Background(), creator, newExerciseInput())
	if err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}

	if err := svc.DeleteExercise(context.Background(), stranger, exercise.ID); !errors.Is(err, ErrExerciseNotFound) {
		t.Fatalf("DeleteExercise() as stranger error = %v, want ErrExerciseNotFound", err)
	}
	if err := svc.DeleteExercise(context.Background(), creator, exercise.ID); err != nil {
		t.Fatalf("DeleteExercise() as creator error = %v", err)
	}
	if _, err := svc.GetExerciseByID(context.Background(), exercise.ID); !errors.Is(err, ErrExerciseNotFound) {
		t.Fatalf("GetExerciseByID() after delete error = %v, want ErrExerciseNotFound", err)
	}
}

func TestToggleExerciseFavorite(t *testing.T) {
	t.Parallel()
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, nil)
	creator := primitive.NewObjectID()
	user := primitive.NewObjectID()

	exercise, err := svc.CreateExercise(context.Background(), creator, newExerciseInput())
	if err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}

	fav, err := svc.ToggleFavorite(context.Background(), user, exercise.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if !fav {
		t.Fatal("first toggle should favorite")
	}

	favorites, err := svc.ListFavorites(context.Background(), user)
	if err != nil {
		t.Fatalf("ListFavorites() error = %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("favorites length = %d, want 1", len(favorites))
	}

	fav, err = svc.ToggleFavorite(context.Background(), user, exercise.ID)
	if err != nil {
		t.Fatalf("second ToggleFavorite() error = %v", err)
	}
	if fav {
		t.Fatal("second toggle should unfavorite")
	}
}

func TestListExercisesFiltered(t *testing.T) {
	t.Parallel()
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, nil)
	creator := primitive.NewObjectID()

	if _, err := svc.CreateExercise(context.Background(), creator, newExerciseInput()); err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}
	cardio := newExerciseInput()
	cardio.Name = "Rowing intervals"
	cardio.Category = domain.CategoryCardio
	cardio.MuscleGroup = domain.MuscleFullBody
	if _, err := svc.CreateExercise(context.Background(), creator, cardio); err != nil {
		t.Fatalf("CreateExercise() error = %v", err)
	}

	got, err := svc.ListExercises(context.Background(), repository.ExerciseFilter{Category: domain.CategoryCardio})
	if err != nil {
		t.Fatalf("ListExercises() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Rowing intervals" {
		t.Fatalf("filtered list = %+v, want only the rowing entry", got)
	}
}
