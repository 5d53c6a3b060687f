package stats

import (
	"sort"

	"fittrack/internal/domain"
)

// GoalTypeStats counts goals of one type by outcome. InProgress counts the
// "in_progress" status, which no write path ever assigns; it is kept for
// response compatibility and always reports 0.
type GoalTypeStats struct {
	Type       domain.GoalType `json:"type"`
	Count      int             `json:"count"`
	Completed  int             `json:"completed"`
	InProgress int             `json:"inProgress"`
}

// GoalsByType groups a user's goals by type, ordered by type name.
func GoalsByType(goals []domain.Goal) []GoalTypeStats {
	byType := make(map[domain.GoalType]*GoalTypeStats)
	for _, g := range goals {
		entry, ok := byType[g.Type]
		if !ok {
			entry = &GoalTypeStats{Type: g.Type}
			byType[g.Type] = entry
		}
		entry.Count++
		if g.Status == domain.GoalCompleted {
			entry.Completed++
		}
		if g.Status == "in_progress" {
			entry.InProgress++
		}
	}

	result := make([]GoalTypeStats, 0, len(byType))
	for _, entry := range byType {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}
