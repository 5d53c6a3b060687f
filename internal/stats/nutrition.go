package stats

import (
	"sort"
	"time"

	"fittrack/internal/domain"
)

// DailySummary totals the macros of the meals logged on one calendar day.
type DailySummary struct {
	TotalCalories float64       `json:"totalCalories"`
	TotalProtein  float64       `json:"totalProtein"`
	TotalCarbs    float64       `json:"totalCarbs"`
	TotalFat      float64       `json:"totalFat"`
	Meals         []domain.Meal `json:"meals"`
}

// DailyNutritionSummary selects the meals whose date falls within the
/// calendar day of target (00:00:00 through 23:59:59.999999999 in target's
// location) and sums their macros.
func DailyNutritionSummary(meals []domain.Meal, target time.Time) DailySummary {
	year, month, day := target.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, target.Location())
	end := start.AddDate(0, 0, 1)

	summary := DailySummary{Meals: []domain.Meal{}}
	for _, m := range meals {
		if m.Date.Before(start) || !m.Date.Before(end) {
			continue
		}
		summary.TotalCalories += m.Calories
		summary.TotalProtein += m.Protein
		summary.TotalCarbs += m.Carbs
		summary.TotalFat += m.Fat
		summary.Meals = append(summary.Meals, m)
	}
	return summary
}

// NutritionDay is one point of the per-day nutrition time series.
type NutritionDay struct {
	Day           string  `json:"day"` // YYYY-MM-DD
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	Count         int     `json:"count"`
}

// NutritionByDay groups meals by the calendar day of their date and sums the
// four macros per day, ascending by day.
func NutritionByDay(meals []domain.Meal) []NutritionDay {
	byDay := make(map[string]*NutritionDay)
	for _, m := range meals {
		day := m.Date.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &NutritionDay{Day: day}
			byDay[day] = entry
		}
		entry.TotalCalories += m.Calories
		entry.TotalProtein += m.Protein
		entry.TotalCarbs += m.Carbs
		entry.TotalFat += m.Fat
		entry.Count++
	}

	series := make([]NutritionDay, 0, len(byDay))
	for _, entry := range byDay {
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Day < series[j].Day })
	return series
}
