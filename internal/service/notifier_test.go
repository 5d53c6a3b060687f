package service

import (
	"context"
	"testing"

	"fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotifierFanOut(t *testing.T) {
	t.Parallel()
	n := NewNotifier()

	var first, second []primitive.ObjectID
	n.Subscribe(func(userID primitive.ObjectID) { first = append(first, userID) })
	n.Subscribe(func(userID primitive.ObjectID) { second = append(second, userID) })

	userID := primitive.NewObjectID()
	n.Publish(userID)

	if len(first) != 1 || first[0] != userID {
		t.Fatalf("first subscriber got %v, want [%v]", first, userID)
	}
	if len(second) != 1 || second[0] != userID {
		t.Fatalf("second subscriber got %v, want [%v]", second, userID)
	}
}

func TestNilNotifierPublish(t *testing.T) {
	t.Parallel()
	var n *Notifier
	n.Publish(primitive.NewObjectID()) // must not panic
}

func TestServicesPublishOnWrite(t *testing.T) {
	t.Parallel()
	n := NewNotifier()
	var events []primitive.ObjectID
	n.Subscribe(func(userID primitive.ObjectID) { events = append(events, userID) })

	svc := NewWorkoutService(newFakeWorkoutRepo(), n)
	userID := primitive.NewObjectID()

	workout, err := svc.CreateWorkout(context.Background(), userID, WorkoutInput{
		Name: "Run", Type: domain.WorkoutCardio, Duration: 30, Difficulty: domain.DifficultyBeginner,
	})
	if err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}
	if len(events) != 1 || events[0] != userID {
		t.Fatalf("events after create = %v, want one for %v", events, userID)
	}

	if err := svc.DeleteWorkout(context.Background(), userID, workout.ID); err != nil {
		t.Fatalf("DeleteWorkout() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events after delete = %d, want 2", len(events))
	}
}
