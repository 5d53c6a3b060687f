package service

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseAccessDenied = errors.New("access denied to modify or delete this exercise")
)

// ExerciseService manages the exercise catalog: shared reads, creator-only
// writes, per-user favorites.
type ExerciseService interface {
	CreateExercise(ctx context.Context, creatorID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error)
	ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error)
	Categories(ctx context.Context) ([]string, error)
	MuscleGroups(ctx context.Context) ([]string, error)
	UpdateExercise(ctx context.Context, userID, exerciseID primitive.ObjectID, patch map[string]any) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	ToggleFavorite(ctx context.Context, userID, exerciseID primitive.ObjectID) (bool, error)
}

// ExerciseInput carries the fields of a candidate catalog entry.
type ExerciseInput struct {
	Name         string
	Category     domain.ExerciseCategory
	MuscleGroup  domain.MuscleGroup
	Difficulty   domain.Difficulty
	Description  string
	Instructions string
	Equipment    string
	VideoURL     string
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	notifier     *Notifier
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, notifier *Notifier) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		notifier:     notifier,
	}
}

// CreateExercise adds a user-authored (custom) entry to the catalog.
func (s *exerciseService) CreateExercise(ctx context.Context, creatorID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if creatorID == primitive.NilObjectID {
		return nil, errors.New("creator ID is required to create an exercise")
	}
	fields := map[string]any{
		"name":        input.Name,
		"category":    string(input.Category),
		"muscleGroup": string(input.MuscleGroup),
		"difficulty":  string(input.Difficulty),
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if err := validation.Exercise.ValidateNew(fields); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		Name:         input.Name,
		Category:     input.Category,
		MuscleGroup:  input.MuscleGroup,
		Difficulty:   input.Difficulty,
		Description:  input.Description,
		Instructions: input.Instructions,
		Equipment:    input.Equipment,
		VideoURL:     input.VideoURL,
		CreatedBy:    creatorID,
		IsCustom:     true,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = exerciseID

	s.notifier.Publish(creatorID)
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single catalog entry.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises lists catalog entries matching the filter.
func (s *exerciseService) ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	return s.exerciseRepo.Find(ctx, filter)
}

// ListFavorites lists the entries the user has starred.
func (s *exerciseService) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetFavorites(ctx, userID)
}

// Categories lists the distinct categories in the catalog.
func (s *exerciseService) Categories(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.Categories(ctx)
}

// MuscleGroups lists the distinct muscle groups in the catalog.
func (s *exerciseService) MuscleGroups(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.MuscleGroups(ctx)
}

// UpdateExercise applies a partial update, creator only.
func (s *exerciseService) UpdateExercise(ctx context.Context, userID, exerciseID primitive.ObjectID, patch map[string]any) (*domain.Exercise, error) {
	if err := validation.Exercise.ValidateUpdate(patch); err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if exercise.CreatedBy != userID {
		return nil, ErrExerciseAccessDenied
	}

	if v, ok := patch["name"].(string); ok {
		exercise.Name = v
	}
	if v, ok := patch["category"].(string); ok {
		exercise.Category = domain.ExerciseCategory(v)
	}
	if v, ok := patch["muscleGroup"].(string); ok {
		exercise.MuscleGroup = domain.MuscleGroup(v)
	}
	if v, ok := patch["difficulty"].(string); ok {
		exercise.Difficulty = domain.Difficulty(v)
	}
	if v, ok := patch["description"].(string); ok {
		exercise.Description = v
	}
	if v, ok := patch["instructions"].(string); ok {
		exercise.Instructions = v
	}
	if v, ok := patch["equipment"].(string); ok {
		exercise.Equipment = v
	}
	if v, ok := patch["videoUrl"].(string); ok {
		exercise.VideoURL = v
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes a catalog entry, creator only. The repository
// filter enforces ownership at the DB level.
func (s *exerciseService) DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	err := s.exerciseRepo.Delete(ctx, exerciseID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	s.notifier.Publish(userID)
	return nil
}

// ToggleFavorite flips the user's membership in the favorite set and
// reports the new state.
func (s *exerciseService) ToggleFavorite(ctx context.Context, userID, exerciseID primitive.ObjectID) (bool, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrExerciseNotFound
		}
		return false, err
	}

	favorited := exercise.IsFavoritedBy(userID)
	if favorited {
		exercise.RemoveFavorite(userID)
	} else {
		exercise.AddFavorite(userID)
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return false, err
	}
	return !favorited, nil
}
