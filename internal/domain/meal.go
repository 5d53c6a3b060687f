package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType slots a meal into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Ingredient carries its own macro contribution. Macro fields left unset
// count as zero when the meal totals are derived.
type Ingredient struct {
	Name     string  `bson:"name" json:"name"`
	Amount   float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Unit     string  `bson:"unit,omitempty" json:"unit,omitempty"`
	Calories float64 `bson:"calories,omitempty" json:"calories,omitempty"`
	Protein  float64 `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    float64 `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat      float64 `bson:"fat,omitempty" json:"fat,omitempty"`
}

// Meal is a nutrition record owned by one user. When Ingredients is
// non-empty the four macro totals are derived from it; otherwise they are
// whatever the caller provided.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Name        string             `bson:"name" json:"name"`
	Type        MealType           `bson:"type" json:"type"`
	Calories    float64            `bson:"calories" json:"calories"`
	Protein     float64            `bson:"protein" json:"protein"`
	Carbs       float64            `bson:"carbs" json:"carbs"`
	Fat         float64            `bson:"fat" json:"fat"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	IsFavorite  bool               `bson:"isFavorite" json:"isFavorite"`
	Ingredients []Ingredient       `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecalculateMacros rederives the four totals from the ingredient list.
// A meal without ingredients keeps its caller-provided totals. Idempotent.
func (m *Meal) RecalculateMacros() {
	if len(m.Ingredients) == 0 {
		return
	}
	var calories, protein, carbs, fat float64
	for _, ing := range m.Ingredients {
		calories += ing.Calories
		protein += ing.Protein
		carbs += ing.Carbs
		fat += ing.Fat
	}
	m.Calories = calories
	m.Protein = protein
	m.Carbs = carbs
	m.Fat = fat
}
