package service

import (
	"context"
	"io"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = *user
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copy := u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := u
	return &copy, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	exercise.ID = id
	r.exercises[id] = *exercise
	return id, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := e
	return &copy, nil
}

func (r *fakeExerciseRepo) Find(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range r.exercises {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.MuscleGroup != "" && e.MuscleGroup != filter.MuscleGroup {
			continue
		}
		if filter.Difficulty != "" && e.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExerciseRepo) GetFavorites(_ context.Context, userID primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range r.exercises {
		if e.IsFavoritedBy(userID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.exercises {
		if !seen[string(e.Category)] {
			seen[string(e.Category)] = true
			out = append(out, string(e.Category))
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) MuscleGroups(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.exercises {
		if !seen[string(e.MuscleGroup)] {
			seen[string(e.MuscleGroup)] = true
			out = append(out, string(e.MuscleGroup))
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) CountCustomByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, e := range r.exercises {
		if e.IsCustom && e.CreatedBy == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id, creatorID primitive.ObjectID) error {
	e, ok := r.exercises[id]
	if !ok || e.CreatedBy != creatorID {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	workout.ID = id
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	r.workouts[id] = *workout
	return id, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copy := w
	return &copy, nil
}

func (r *fakeWorkoutRepo) GetByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	w, ok := r.workouts[workout.ID]
	if !ok || w.UserID != workout.UserID {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	w, ok := r.workouts[id]
	if !ok || w.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakeMealRepo struct {
	meals map[primitive.ObjectID]domain.Meal
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{meals: make(map[primitive.ObjectID]domain.Meal)}
}

func (r *fakeMealRepo) Create(_ context.Context, meal *domain.Meal) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	meal.ID = id
	if meal.Date.IsZero() {
		meal.Date = time.Now()
	}
	r.meals[id] = *meal
	return id, nil
}

func (r *fakeMealRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Meal, error) {
	m, ok := r.meals[id]
	if !ok || m.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copy := m
	return &copy, nil
}

func (r *fakeMealRepo) GetByUser(_ context.Context, userID primitive.ObjectID, filter repository.MealFilter) ([]domain.Meal, error) {
	var out []domain.Meal
	for _, m := range r.meals {
		if m.UserID != userID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.IsFavorite != nil && m.IsFavorite != *filter.IsFavorite {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMealRepo) Update(_ context.Context, meal *domain.Meal) error {
	m, ok := r.meals[meal.ID]
	if !ok || m.UserID != meal.UserID {
		return repository.ErrNotFound
	}
	r.meals[meal.ID] = *meal
	return nil
}

func (r *fakeMealRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	m, ok := r.meals[id]
	if !ok || m.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.meals, id)
	return nil
}

type fakeGoalRepo struct {
	goals map[primitive.ObjectID]domain.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[primitive.ObjectID]domain.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	goal.ID = id
	if goal.Status == "" {
		goal.Status = domain.GoalActive
	}
	if goal.Priority == "" {
		goal.Priority = domain.PriorityMedium
	}
	if goal.StartDate.IsZero() {
		goal.StartDate = time.Now()
	}
	r.goals[id] = *goal
	return id, nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copy := g
	return &copy, nil
}

func (r *fakeGoalRepo) GetByUser(_ context.Context, userID primitive.ObjectID, filter repository.GoalFilter) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.goals {
		if g.UserID != userID {
			continue
		}
		if filter.Type != "" && g.Type != filter.Type {
			continue
		}
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && g.Priority != filter.Priority {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *domain.Goal) error {
	g, ok := r.goals[goal.ID]
	if !ok || g.UserID != goal.UserID {
		return repository.ErrNotFound
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}

// fakeFileStorage records puts and hands back deterministic URLs.
type fakeFileStorage struct {
	putKeys []string
}

func (s *fakeFileStorage) PutObject(_ context.Context, objectKey, _ string, body io.Reader, _ int64) error {
	_, _ = io.Copy(io.Discard, body)
	s.putKeys = append(s.putKeys, objectKey)
	return nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://files.test/" + objectKey, nil
}

func (s *fakeFileStorage) DeleteObject(_ context.Context, _ string) error {
	return nil
}
