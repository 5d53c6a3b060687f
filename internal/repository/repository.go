package repository

import (
	"context"
	"time"

	"fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ExerciseFilter narrows catalog listings. Zero values mean "no filter".
type ExerciseFilter struct {
	Category    domain.ExerciseCategory
	MuscleGroup domain.MuscleGroup
	Difficulty  domain.Difficulty
	Search      string
}

// ExerciseRepository defines the interface for the exercise catalog.
// The catalog is shared: reads are not owner-scoped, but Delete is
// restricted to the creator.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	GetFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error)
	Categories(ctx context.Context) ([]string, error)
	MuscleGroups(ctx context.Context) ([]string, error)
	CountCustomByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id, creatorID primitive.ObjectID) error
}

// WorkoutRepository defines the interface for workout records. Every read
// and write is scoped to the owning user.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// MealFilter narrows meal listings. Nil/zero values mean "no filter".
type MealFilter struct {
	Type       domain.MealType
	Date       *time.Time
	IsFavorite *bool
}

// MealRepository defines the interface for nutrition records, owner-scoped.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Meal, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, filter MealFilter) ([]domain.Meal, error)
	Update(ctx context.Context, meal *domain.Meal) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// GoalFilter narrows goal listings. Zero values mean "no filter".
type GoalFilter struct {
	Type     domain.GoalType
	Status   domain.GoalStatus
	Priority domain.GoalPriority
}

// GoalRepository defines the interface for goal records, owner-scoped.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Goal, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, filter GoalFilter) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
