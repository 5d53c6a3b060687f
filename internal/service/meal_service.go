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

var ErrMealNotFound = errors.New("meal not found")

// MealService manages a user's nutrition log. Every operation is scoped to
// the owning user.
type MealService interface {
	CreateMeal(ctx context.Context, userID primitive.ObjectID, input MealInput) (*domain.Meal, error)
	GetMeal(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error)
	ListMeals(ctx context.Context, userID primitive.ObjectID, filter repository.MealFilter) ([]domain.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID primitive.ObjectID, patch map[string]any) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID primitive.ObjectID) error
	ToggleFavorite(ctx context.Context, userID, mealID primitive.ObjectID) (bool, error)
	DailySummary(ctx context.Context, userID primitive.ObjectID, date time.Time) (stats.DailySummary, error)
	Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.NutritionDay, error)
}

// MealInput carries the fields of a candidate meal.
type MealInput struct {
	Name        string
	Type        domain.MealType
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Notes       string
	Date        time.Time
	Ingredients []domain.Ingredient
}

type mealService struct {
	mealRepo repository.MealRepository
	notifier *Notifier
}

// NewMealService creates a new instance of mealService.
func NewMealService(mealRepo repository.MealRepository, notifier *Notifier) MealService {
	return &mealService{
		mealRepo: mealRepo,
		notifier: notifier,
	}
}

// CreateMeal validates the candidate, derives macros from any ingredient
// list and persists it.
func (s *mealService) CreateMeal(ctx context.Context, userID primitive.ObjectID, input MealInput) (*domain.Meal, error) {
	fields := map[string]any{
		"name":     input.Name,
		"type":     string(input.Type),
		"calories": input.Calories,
		"protein":  input.Protein,
		"carbs":    input.Carbs,
		"fat":      input.Fat,
	}
	if err := validation.Meal.ValidateNew(fields); err != nil {
		return nil, err
	}

	meal := &domain.Meal{
		UserID:      userID,
		Name:        input.Name,
		Type:        input.Type,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Notes:       input.Notes,
		Date:        input.Date,
		Ingredients: input.Ingredients,
	}
	meal.RecalculateMacros()

	mealID, err := s.mealRepo.Create(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = mealID

	s.notifier.Publish(userID)
	return meal, nil
}

// GetMeal retrieves one meal within the owner's scope.
func (s *mealService) GetMeal(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

// ListMeals lists a user's meals matching the filter, newest date first.
func (s *mealService) ListMeals(ctx context.Context, userID primitive.ObjectID, filter repository.MealFilter) ([]domain.Meal, error) {
	return s.mealRepo.GetByUser(ctx, userID, filter)
}

// UpdateMeal applies a partial update. Macros are rederived only when the
// ingredient list changed; totals set directly stay as provided.
func (s *mealService) UpdateMeal(ctx context.Context, userID, mealID primitive.ObjectID, patch map[string]any) (*domain.Meal, error) {
	if err := validation.Meal.ValidateUpdate(patch); err != nil {
		return nil, err
	}

	meal, err := s.mealRepo.GetByID(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	if v, ok := patch["name"].(string); ok {
		meal.Name = v
	}
	if v, ok := patch["type"].(string); ok {
		meal.Type = domain.MealType(v)
	}
	if v, ok := toFloat(patch["calories"]); ok {
		meal.Calories = v
	}
	if v, ok := toFloat(patch["protein"]); ok {
		meal.Protein = v
	}
	if v, ok := toFloat(patch["carbs"]); ok {
		meal.Carbs = v
	}
	if v, ok := toFloat(patch["fat"]); ok {
		meal.Fat = v
	}
	if v, ok := patch["notes"].(string); ok {
		meal.Notes = v
	}
	if v, ok := patch["date"].(string); ok {
		if date, err := time.Parse(time.RFC3339, v); err == nil {
			meal.Date = date
		}
	}
	if v, ok := patch["ingredients"]; ok {
		ingredients, err := decodeIngredients(v)
		if err != nil {
			return nil, err
		}
		meal.Ingredients = ingredients
		meal.RecalculateMacros()
	}

	if err := s.mealRepo.Update(ctx, meal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	s.notifier.Publish(userID)
	return meal, nil
}

// DeleteMeal removes a meal within the owner's scope.
func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID primitive.ObjectID) error {
	err := s.mealRepo.Delete(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	s.notifier.Publish(userID)
	return nil
}

// ToggleFavorite flips the meal's favorite flag and reports the new state.
func (s *mealService) ToggleFavorite(ctx context.Context, userID, mealID primitive.ObjectID) (bool, error) {
	meal, err := s.mealRepo.GetByID(ctx, mealID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrMealNotFound
		}
		return false, err
	}

	meal.IsFavorite = !meal.IsFavorite
	if err := s.mealRepo.Update(ctx, meal); err != nil {
		return false, err
	}
	return meal.IsFavorite, nil
}

// DailySummary reduces the meals of one calendar day into macro totals.
func (s *mealService) DailySummary(ctx context.Context, userID primitive.ObjectID, date time.Time) (stats.DailySummary, error) {
	meals, err := s.mealRepo.GetByUser(ctx, userID, repository.MealFilter{})
	if err != nil {
		return stats.DailySummary{}, err
	}
	return stats.DailyNutritionSummary(meals, date), nil
}

// Stats reduces the user's meals into the per-day time series.
func (s *mealService) Stats(ctx context.Context, userID primitive.ObjectID) ([]stats.NutritionDay, error) {
	meals, err := s.mealRepo.GetByUser(ctx, userID, repository.MealFilter{})
	if err != nil {
		return nil, err
	}
	return stats.NutritionByDay(meals), nil
}

// decodeIngredients converts the JSON shape of an ingredients patch into
// domain ingredients.
func decodeIngredients(v any) ([]domain.Ingredient, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, &validation.ValidationError{Field: "ingredients", Reason: "must be an array"}
	}
	ingredients := make([]domain.Ingredient, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &validation.ValidationError{Field: "ingredients", Reason: "entries must be objects"}
		}
		var ing domain.Ingredient
		if name, ok := obj["name"].(string); ok {
			ing.Name = name
		}
		if unit, ok := obj["unit"].(string); ok {
			ing.Unit = unit
		}
		if n, ok := toFloat(obj["amount"]); ok {
			ing.Amount = n
		}
		if n, ok := toFloat(obj["calories"]); ok {
			ing.Calories = n
		}
		if n, ok := toFloat(obj["protein"]); ok {
			ing.Protein = n
		}
		if n, ok := toFloat(obj["carbs"]); ok {
			ing.Carbs = n
		}
		if n, ok := toFloat(obj["fat"]); ok {
			ing.Fat = n
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}
