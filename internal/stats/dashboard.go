// Package stats reduces owner-scoped record sets into the summaries served
// by the dashboard and stats endpoints. Every function is a pure reduction:
// records are never mutated, and an empty input yields a zeroed summary.
package stats

import (
	"sort"
	"time"

	"fittrack/internal/domain"
)

const recentWorkoutLimit = 7

// RecentWorkout is the date+duration projection shown on the dashboard.
type RecentWorkout struct {
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
}

// WorkoutDistribution is the histogram of workouts per type, over all of a
// user's workouts. The per-type counts always sum to the workout total.
type WorkoutDistribution struct {
	Strength    int `json:"strength"`
	Cardio      int `json:"cardio"`
	Flexibility int `json:"flexibility"`
	HIIT        int `json:"hiit"`
	Custom      int `json:"custom"`
}

// NutritionTotals summarizes a user's meal log.
type NutritionTotals struct {
	TotalMeals int     `json:"totalMeals"`
	Calories   float64 `json:"calories"`
}

// GoalCounts summarizes goals by lifecycle state.
type GoalCounts struct {
	TotalGoals     int `json:"totalGoals"`
	ActiveGoals    int `json:"activeGoals"`
	CompletedGoals int `json:"completedGoals"`
}

// DashboardSummary is the full dashboard payload for one user.
type DashboardSummary struct {
	TotalWorkouts       int                 `json:"totalWorkouts"`
	TotalExercises      int                 `json:"totalExercises"`
	StreakDays          int                 `json:"streakDays"`
	RecentWorkouts      []RecentWorkout     `json:"recentWorkouts"`
	WorkoutDistribution WorkoutDistribution `json:"workoutDistribution"`
	Nutrition           NutritionTotals     `json:"nutrition"`
	Goals               GoalCounts          `json:"goals"`
}

// Dashboard reduces all of a user's workouts, meals and goals into the
// dashboard summary. customExercises is the count of catalog entries the
// user authored. StreakDays counts workouts created within the trailing
// seven days of now; it is not a consecutive-day streak.
func Dashboard(workouts []domain.Workout, customExercises int, meals []domain.Meal, goals []domain.Goal, now time.Time) DashboardSummary {
	summary := DashboardSummary{
		TotalWorkouts:  len(workouts),
		TotalExercises: customExercises,
		RecentWorkouts: []RecentWorkout{},
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, w := range workouts {
		if !w.CreatedAt.Before(weekAgo) {
			summary.StreakDays++
		}
		switch w.Type {
		case domain.WorkoutStrength:
			summary.WorkoutDistribution.Strength++
		case domain.WorkoutCardio:
			summary.WorkoutDistribution.Cardio++
		case domain.WorkoutFlexibility:
			summary.WorkoutDistribution.Flexibility++
		case domain.WorkoutHIIT:
			summary.WorkoutDistribution.HIIT++
		case domain.WorkoutCustom:
			summary.WorkoutDistribution.Custom++
		}
	}

	byCreated := make([]domain.Workout, len(workouts))
	copy(byCreated, workouts)
	sort.SliceStable(byCreated, func(i, j int) bool {
		return byCreated[i].CreatedAt.After(byCreated[j].CreatedAt)
	})
	for i, w := range byCreated {
		if i == recentWorkoutLimit {
			break
		}
		summary.RecentWorkouts = append(summary.RecentWorkouts, RecentWorkout{Date: w.Date, Duration: w.Duration})
	}

	summary.Nutrition.TotalMeals = len(meals)
	for _, m := range meals {
		summary.Nutrition.Calories += m.Calories
	}

	summary.Goals.TotalGoals = len(goals)
	for _, g := range goals {
		switch g.Status {
		case domain.GoalActive:
			summary.Goals.ActiveGoals++
		case domain.GoalCompleted:
			summary.Goals.CompletedGoals++
		}
	}

	return summary
}
