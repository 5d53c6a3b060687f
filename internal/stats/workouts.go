package stats

import (
	"sort"

	"fittrack/internal/domain"
)

// WorkoutDay is one point of the per-day workout time series.
type WorkoutDay struct {
	Day           string `json:"day"` // YYYY-MM-DD
	TotalCalories int    `json:"totalCalories"`
	TotalDuration int    `json:"totalDuration"`
	Count         int    `json:"count"`
}

// WorkoutsByDay groups workouts by the calendar day of their date and sums
// duration and calories per day, ascending by day.
func WorkoutsByDay(workouts []domain.Workout) []WorkoutDay {
	byDay := make(map[string]*WorkoutDay)
	for _, w := range workouts {
		day := w.Date.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &WorkoutDay{Day: day}
			byDay[day] = entry
		}
		entry.TotalCalories += w.CaloriesBurned
		entry.TotalDuration += w.Duration
		entry.Count++
	}

	series := make([]WorkoutDay, 0, len(byDay))
	for _, entry := range byDay {
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Day < series[j].Day })
	return series
}
