package service

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/stats"
	"fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalService manages a user's goals: lifecycle, progress history,
// milestones and reminders.
type GoalService interface {
	CreateGoal(ctx context.Context, userID primitive.ObjectID, input GoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID primitive.ObjectID, filter repository.GoalFilter) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID primitive.ObjectID, patch map[string]any) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error
	UpdateProgress(ctx context.Context, userID, goalID primitive.ObjectID, value float64, notes string) (*domain.Goal, error)
	AddMilestone(ctx context.Context, userID, goalID primitive.ObjectID, title string, targetValue float64) (*domain.Goal, error)
	CompleteMilestone(ctx context.Context, userID, goalID, milestoneID primitive.ObjectID) (*domain.Goal, error)
	AddReminder(ctx context.Context, userID, goalID primitive.ObjectID, date time.Time, message string) (*domain.Goal, error)
	Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.GoalTypeStats, error)
}

// GoalInput carries the fields of a candidate goal.
type GoalInput struct {
	Title       string
	Type        domain.GoalType
	Target      domain.Target
	TargetDate  time.Time
	StartDate   time.Time
	Priority    domain.GoalPriority
	Description string
}

type goalService struct {
	goalRepo repository.GoalRepository
	notifier *Notifier
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository, notifier *Notifier) GoalService {
	return &goalService{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// CreateGoal validates the candidate and persists it with an active status.
// The progress unit is seeded from the target unit.
func (s *goalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, input GoalInput) (*domain.Goal, error) {
	fields := map[string]any{
		"title": input.Title,
		"type":  string(input.Type),
		"target": map[string]any{
			"value": input.Target.Value,
			"unit":  input.Target.Unit,
		},
		"targetDate": input.TargetDate,
	}
	if input.Priority != "" {
		fields["priority"] = string(input.Priority)
	}
	if err := validation.Goal.ValidateNew(fields); err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		UserID:      userID,
		Title:       input.Title,
		Type:        input.Type,
		Target:      input.Target,
		StartDate:   input.StartDate,
		TargetDate:  input.TargetDate,
		Priority:    input.Priority,
		Description: input.Description,
		Progress:    domain.Progress{Unit: input.Target.Unit},
	}

	goalID, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = goalID

	s.notifier.Publish(userID)
	return goal, nil
}

// GetGoal retrieves one goal within the owner's scope.
func (s *goalService) GetGoal(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error) {
	return s.fetch(ctx, userID, goalID)
}

// ListGoals lists a user's goals matching the filter.
func (s *goalService) ListGoals(ctx context.Context, userID primitive.ObjectID, filter repository.GoalFilter) ([]domain.Goal, error) {
	return s.goalRepo.GetByUser(ctx, userID, filter)
}

// UpdateGoal applies a partial update to the goal's descriptive fields.
// Progress is not updatable here; use UpdateProgress.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID primitive.ObjectID, patch map[string]any) (*domain.Goal, error) {
	if err := validation.Goal.ValidateUpdate(patch); err != nil {
		return nil, err
	}

	goal, err := s.fetch(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if v, ok := patch["title"].(string); ok {
		goal.Title = v
	}
	if v, ok := patch["type"].(string); ok {
		goal.Type = domain.GoalType(v)
	}
	if v, ok := patch["target"].(map[string]any); ok {
		if n, ok := toFloat(v["value"]); ok {
			goal.Target.Value = n
		}
		if u, ok := v["unit"].(string); ok {
			goal.Target.Unit = u
			goal.Progress.Unit = u
		}
	}
	if v, ok := patch["targetDate"].(string); ok {
		if date, err := time.Parse(time.RFC3339, v); err == nil {
			goal.TargetDate = date
		}
	}
	if v, ok := patch["description"].(string); ok {
		goal.Description = v
	}
	if v, ok := patch["priority"].(string); ok {
		goal.Priority = domain.GoalPriority(v)
	}

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}

	s.notifier.Publish(userID)
	return goal, nil
}

// DeleteGoal removes a goal within the owner's scope.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error {
	err := s.goalRepo.Delete(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	s.notifier.Publish(userID)
	return nil
}

// UpdateProgress records a progress value on the goal. Reaching the target
// completes the goal; a completed goal stays completed.
func (s *goalService) UpdateProgress(ctx context.Context, userID, goalID primitive.ObjectID, value float64, notes string) (*domain.Goal, error) {
	goal, err := s.fetch(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.UpdateProgress(value, notes, time.Now())

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}

	s.notifier.Publish(userID)
	return goal, nil
}

// AddMilestone appends an unachieved milestone to the goal.
func (s *goalService) AddMilestone(ctx context.Context, userID, goalID primitive.ObjectID, title string, targetValue float64) (*domain.Goal, error) {
	if title == "" {
		return nil, &validation.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	goal, err := s.fetch(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.AddMilestone(title, targetValue)

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// CompleteMilestone marks one of the goal's milestones as achieved.
func (s *goalService) CompleteMilestone(ctx context.Context, userID, goalID, milestoneID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.fetch(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if !goal.AchieveMilestone(milestoneID, time.Now()) {
		return nil, &validation.InvalidOperationError{Field: "milestoneId"}
	}

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}

	s.notifier.Publish(userID)
	return goal, nil
}

// AddReminder appends an unsent reminder to the goal.
func (s *goalService) AddReminder(ctx context.Context, userID, goalID primitive.ObjectID, date time.Time, message string) (*domain.Goal, error) {
	if message == "" {
		return nil, &validation.ValidationError{Field: "message", Reason: "must not be empty"}
	}

	goal, err := s.fetch(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.AddReminder(date, message)

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Stats reduces the user's goals into per-type counts.
func (s *goalService) Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.GoalTypeStats, error) {
	goals, err := s.goalRepo.GetByUser(ctx, userID, repository.GoalFilter{})
	if err != nil {
		return nil, err
	}
	return stats.GoalsByType(goals), nil
}

func (s *goalService) fetch(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) save(ctx context.Context, goal *domain.Goal) error {
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}
