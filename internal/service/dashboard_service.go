package service

import (
	"context"
	"time"

	"fittrack/internal/repository"
	"fittrack/internal/stats"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardService assembles the cross-domain home screen summary.
type DashboardService interface {
	Summary(ctx context.Context, userID primitive.ObjectID) (stats.DashboardSummary, error)
}

type dashboardService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	mealRepo     repository.MealRepository
	goalRepo     repository.GoalRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	mealRepo repository.MealRepository,
	goalRepo repository.GoalRepository,
) DashboardService {
	return &dashboardService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		mealRepo:     mealRepo,
		goalRepo:     goalRepo,
	}
}

// Summary gathers the user's workouts, custom exercise count, meals and
// goals and reduces them into one snapshot.
func (s *dashboardService) Summary(ctx context.Context, userID primitive.ObjectID) (stats.DashboardSummary, error) {
	workouts, err := s.workoutRepo.GetByUser(ctx, userID)
	if err != nil {
		return stats.DashboardSummary{}, err
	}
	customExercises, err := s.exerciseRepo.CountCustomByUser(ctx, userID)
	if err != nil {
		return stats.DashboardSummary{}, err
	}
	meals, err := s.mealRepo.GetByUser(ctx, userID, repository.MealFilter{})
	if err != nil {
		return stats.DashboardSummary{}, err
	}
	goals, err := s.goalRepo.GetByUser(ctx, userID, repository.GoalFilter{})
	if err != nil {
		return stats.DashboardSummary{}, err
	}

	return stats.Dashboard(workouts, int(customExercises), meals, goals, time.Now()), nil
}
