package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalType classifies what a goal is tracking.
type GoalType string

const (
	GoalWeight    GoalType = "weight"
	GoalWorkout   GoalType = "workout"
	GoalNutrition GoalType = "nutrition"
	GoalStrength  GoalType = "strength"
	GoalEndurance GoalType = "endurance"
	GoalCustom    GoalType = "custom"
)

// GoalStatus is the lifecycle state of a goal. Completion is one-way: once
// completed a goal is never automatically reverted to active.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// GoalPriority orders goals for display.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

// Target is the numeric objective of a goal.
type Target struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"`
}

// ProgressEntry is one append-only history record of a progress update.
type ProgressEntry struct {
	Date  time.Time `bson:"date" json:"date"`
	Value float64   `bson:"value" json:"value"`
	Notes string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Progress tracks the current value against the target.
type Progress struct {
	Current float64         `bson:"current" json:"current"`
	Unit    string          `bson:"unit" json:"unit"`
	History []ProgressEntry `bson:"history,omitempty" json:"history,omitempty"`
}

// Milestone is an intermediate checkpoint on the way to a goal.
type Milestone struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TargetValue float64            `bson:"targetValue" json:"targetValue"`
	Achieved    bool               `bson:"achieved" json:"achieved"`
	AchievedAt  *time.Time         `bson:"achievedAt,omitempty" json:"achievedAt,omitempty"`
}

// Reminder is a scheduled nudge. Sent flags are stored but dispatching is
// out of scope for this service.
type Reminder struct {
	Date    time.Time `bson:"date" json:"date"`
	Message string    `bson:"message" json:"message"`
	Sent    bool      `bson:"sent" json:"sent"`
}

// Goal is a tracked objective owned by one user.
type Goal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Title       string             `bson:"title" json:"title"`
	Type        GoalType           `bson:"type" json:"type"`
	Target      Target             `bson:"target" json:"target"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	TargetDate  time.Time          `bson:"targetDate" json:"targetDate"`
	Progress    Progress           `bson:"progress" json:"progress"`
	Status      GoalStatus         `bson:"status" json:"status"`
	Priority    GoalPriority       `bson:"priority" json:"priority"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Milestones  []Milestone        `bson:"milestones,omitempty" json:"milestones,omitempty"`
	Reminders   []Reminder         `bson:"reminders,omitempty" json:"reminders,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgressPercent returns current/target as a percentage, 0 when the target
// value is zero.
func (g *Goal) ProgressPercent() float64 {
	if g.Target.Value == 0 {
		return 0
	}
	return (g.Progress.Current / g.Target.Value) * 100
}

// UpdateProgress sets the current value, appends exactly one history entry
// and completes the goal when the value reaches the target. A later update
// with a lower value does not revert a completed goal; no floor is applied
// to regressions.
func (g *Goal) UpdateProgress(value float64, notes string, now time.Time) {
	g.Progress.Current = value
	g.Progress.History = append(g.Progress.History, ProgressEntry{
		Date:  now,
		Value: value,
		Notes: notes,
	})
	if value >= g.Target.Value {
		g.Status = GoalCompleted
	}
}

// AddMilestone appends an unachieved milestone and returns it.
func (g *Goal) AddMilestone(title string, targetValue float64) Milestone {
	m := Milestone{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TargetValue: targetValue,
	}
	g.Milestones = append(g.Milestones, m)
	return m
}

// AchieveMilestone marks the milestone with the given id as achieved.
// Returns false when no such milestone exists on this goal.
func (g *Goal) AchieveMilestone(id primitive.ObjectID, now time.Time) bool {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			g.Milestones[i].Achieved = true
			g.Milestones[i].AchievedAt = &now
			return true
		}
	}
	return false
}

// AddReminder appends an unsent reminder.
func (g *Goal) AddReminder(date time.Time, message string) {
	g.Reminders = append(g.Reminders, Reminder{Date: date, Message: message})
}
