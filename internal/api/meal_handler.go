package api

import (
	"fmt"
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealHandler serves the nutrition log endpoints.
type MealHandler struct {
	mealService service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

type ingredientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type CreateMealRequest struct {
	Name        string              `json:"name" binding:"required"`
	Type        string              `json:"type" binding:"required"`
	Calories    float64             `json:"calories"`
	Protein     float64             `json:"protein"`
	Carbs       float64             `json:"carbs"`
	Fat         float64             `json:"fat"`
	Notes       string              `json:"notes"`
	Date        time.Time           `json:"date"`
	Ingredients []ingredientRequest `json:"ingredients"`
}

// CreateMeal records a new meal. If ingredients are given the macro totals
// are derived from them server-side.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	ingredients := make([]domain.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, domain.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Calories: ing.Calories,
			Protein:  ing.Protein,
			Carbs:    ing.Carbs,
			Fat:      ing.Fat,
		})
	}

	meal, err := h.mealService.CreateMeal(c.Request.Context(), userID, service.MealInput{
		Name:        req.Name,
		Type:        domain.MealType(req.Type),
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Notes:       req.Notes,
		Date:        req.Date,
		Ingredients: ingredients,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals lists the user's meals, optionally filtered by type, date or
// favorite flag.
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	filter := repository.MealFilter{Type: domain.MealType(c.Query("type"))}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	if favStr := c.Query("isFavorite"); favStr != "" {
		fav := favStr == "true"
		filter.IsFavorite = &fav
	}

	meals, err := h.mealService.ListMeals(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ListFavorites lists the user's favorited meals.
func (h *MealHandler) ListFavorites(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	fav := true
	meals, err := h.mealService.ListMeals(c.Request.Context(), userID, repository.MealFilter{IsFavorite: &fav})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetMeal retrieves one of the user's meals by id.
func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal ID format")
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// UpdateMeal applies a partial update to one of the user's meals.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal ID format")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	meal, err := h.mealService.UpdateMeal(c.Request.Context(), userID, mealID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal removes one of the user's meals.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal ID format")
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleFavorite flips the meal's favorite flag and returns the new state.
func (h *MealHandler) ToggleFavorite(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal ID format")
		return
	}

	favorited, err := h.mealService.ToggleFavorite(c.Request.Context(), userID, mealID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": favorited})
}

// DailySummary sums the macros of one calendar day (default: today).
func (h *MealHandler) DailySummary(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	summary, err := h.mealService.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Stats returns the per-day nutrition time series.
func (h *MealHandler) Stats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	days, err := h.mealService.Stats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
