package stats

import (
	"testing"
	"time"

	"fittrack/internal/domain"
)

var now = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func workout(t domain.WorkoutType, duration int, date, created time.Time) domain.Workout {
	w := domain.Workout{Type: t, Duration: duration, Date: date, CreatedAt: created}
	w.RecalculateCalories()
	return w
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	workouts := []domain.Workout{
		workout(domain.WorkoutStrength, 60, now.AddDate(0, 0, -1), now.AddDate(0, 0, -1)),
		workout(domain.WorkoutCardio, 30, now.AddDate(0, 0, -3), now.AddDate(0, 0, -3)),
		workout(domain.WorkoutCardio, 40, now.AddDate(0, 0, -10), now.AddDate(0, 0, -10)),
		workout(domain.WorkoutCustom, 20, now.AddDate(0, 0, -20), now.AddDate(0, 0, -20)),
	}
	meals := []domain.Meal{
		{Calories: 500, Date: now},
		{Calories: 300, Date: now},
	}
	goals := []domain.Goal{
		{Status: domain.GoalActive},
		{Status: domain.GoalCompleted},
		{Status: domain.GoalAbandoned},
	}

	s := Dashboard(workouts, 2, meals, goals, now)

	if s.TotalWorkouts != 4 || s.TotalExercises != 2 {
		t.Fatalf("totals: workouts=%d exercises=%d", s.TotalWorkouts, s.TotalExercises)
	}
	if s.StreakDays != 2 {
		t.Fatalf("streak = %d, want 2 (workouts in trailing 7 days)", s.StreakDays)
	}
	if len(s.RecentWorkouts) != 4 {
		t.Fatalf("recent = %d, want 4", len(s.RecentWorkouts))
	}
	if s.RecentWorkouts[0].Duration != 60 {
		t.Fatalf("recent[0] is not the most recently created workout: %+v", s.RecentWorkouts[0])
	}

	d := s.WorkoutDistribution
	histSum := d.Strength + d.Cardio + d.Flexibility + d.HIIT + d.Custom
	if histSum != s.TotalWorkouts {
		t.Fatalf("distribution sums to %d, want %d", histSum, s.TotalWorkouts)
	}
	if d.Cardio != 2 || d.Custom != 1 {
		t.Fatalf("distribution = %+v", d)
	}

	if s.Nutrition.TotalMeals != 2 || s.Nutrition.Calories != 800 {
		t.Fatalf("nutrition = %+v", s.Nutrition)
	}
	if s.Goals.TotalGoals != 3 || s.Goals.ActiveGoals != 1 || s.Goals.CompletedGoals != 1 {
		t.Fatalf("goals = %+v", s.Goals)
	}
}

func TestDashboard_RecentWorkoutsCappedAtSeven(t *testing.T) {
	t.Parallel()

	var workouts []domain.Workout
	for i := 0; i < 10; i++ {
		workouts = append(workouts, workout(domain.WorkoutStrength, 30+i, now, now.Add(-time.Duration(i)*time.Hour)))
	}

	s := Dashboard(workouts, 0, nil, nil, now)
	if len(s.RecentWorkouts) != 7 {
		t.Fatalf("recent = %d, want 7", len(s.RecentWorkouts))
	}
	if s.RecentWorkouts[0].Duration != 30 {
		t.Fatalf("recent[0].Duration = %d, want newest (30)", s.RecentWorkouts[0].Duration)
	}
}

func TestDashboard_Empty(t *testing.T) {
	t.Parallel()

	s := Dashboard(nil, 0, nil, nil, now)
	if s.TotalWorkouts != 0 || s.StreakDays != 0 || s.Nutrition.Calories != 0 || s.Goals.TotalGoals != 0 {
		t.Fatalf("empty input did not zero the summary: %+v", s)
	}
	if s.RecentWorkouts == nil || len(s.RecentWorkouts) != 0 {
		t.Fatalf("recent workouts should be an empty list, got %v", s.RecentWorkouts)
	}
}

func TestDailyNutritionSummary(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	meals := []domain.Meal{
		{Name: "breakfast", Calories: 400, Protein: 20, Date: day.Add(8 * time.Hour)},
		{Name: "late snack", Calories: 150, Fat: 5, Date: day.Add(23*time.Hour + 59*time.Minute)},
		{Name: "yesterday", Calories: 999, Date: day.Add(-time.Hour)},
		{Name: "tomorrow", Calories: 999, Date: day.AddDate(0, 0, 1)},
	}

	s := DailyNutritionSummary(meals, day.Add(12*time.Hour))
	if s.TotalCalories != 550 || s.TotalProtein != 20 || s.TotalFat != 5 {
		t.Fatalf("totals = %+v", s)
	}
	if len(s.Meals) != 2 {
		t.Fatalf("matched %d meals, want 2", len(s.Meals))
	}
}

func TestDailyNutritionSummary_Empty(t *testing.T) {
	t.Parallel()

	s := DailyNutritionSummary(nil, now)
	if s.TotalCalories != 0 || s.TotalProtein != 0 || s.TotalCarbs != 0 || s.TotalFat != 0 {
		t.Fatalf("empty set produced non-zero totals: %+v", s)
	}
	if s.Meals == nil || len(s.Meals) != 0 {
		t.Fatalf("meals should be an empty list, got %v", s.Meals)
	}
}

func TestWorkoutsByDay(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2025, 5, 8, 7, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 9, 7, 0, 0, 0, time.UTC)
	workouts := []domain.Workout{
		workout(domain.WorkoutCardio, 30, d2, d2),   // 240 cal
		workout(domain.WorkoutStrength, 60, d1, d1), // 300 cal
		workout(domain.WorkoutHIIT, 10, d1.Add(10*time.Hour), d1), // 100 cal
	}

	series := WorkoutsByDay(workouts)
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}
	if series[0].Day != "2025-05-08" || series[1].Day != "2025-05-09" {
		t.Fatalf("series not ascending by day: %+v", series)
	}
	if series[0].Count != 2 || series[0].TotalDuration != 70 || series[0].TotalCalories != 400 {
		t.Fatalf("day one totals = %+v", series[0])
	}
}

func TestNutritionByDay(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2025, 5, 8, 8, 0, 0, 0, time.UTC)
	meals := []domain.Meal{
		{Calories: 400, Protein: 20, Carbs: 40, Fat: 10, Date: d1},
		{Calories: 600, Protein: 30, Carbs: 60, Fat: 15, Date: d1.Add(6 * time.Hour)},
		{Calories: 200, Date: d1.AddDate(0, 0, 1)},
	}

	series := NutritionByDay(meals)
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}
	first := series[0]
	if first.Count != 2 || first.TotalCalories != 1000 || first.TotalProtein != 50 || first.TotalCarbs != 100 || first.TotalFat != 25 {
		t.Fatalf("day one = %+v", first)
	}

	if got := NutritionByDay(nil); len(got) != 0 {
		t.Fatalf("empty input: got %v", got)
	}
}

func TestGoalsByType(t *testing.T) {
	t.Parallel()

	goals := []domain.Goal{
		{Type: domain.GoalWeight, Status: domain.GoalCompleted},
		{Type: domain.GoalWeight, Status: domain.GoalActive},
		{Type: domain.GoalEndurance, Status: domain.GoalAbandoned},
	}

	result := GoalsByType(goals)
	if len(result) != 2 {
		t.Fatalf("result length = %d, want 2", len(result))
	}
	// Ordered by type name: endurance before weight.
	if result[0].Type != domain.GoalEndurance || result[1].Type != domain.GoalWeight {
		t.Fatalf("ordering: %+v", result)
	}
	weight := result[1]
	if weight.Count != 2 || weight.Completed != 1 {
		t.Fatalf("weight stats = %+v", weight)
	}
	// No write path produces in_progress, so it always reports 0.
	if weight.InProgress != 0 || result[0].InProgress != 0 {
		t.Fatalf("inProgress should be 0: %+v", result)
	}
}
