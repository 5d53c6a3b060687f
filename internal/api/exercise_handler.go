package api

import (
	"fmt"
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler serves the shared exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type CreateExerciseRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	MuscleGroup  string `json:"muscleGroup" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Equipment    string `json:"equipment"`
	VideoURL     string `json:"videoUrl"`
}

// CreateExercise adds a custom entry to the catalog, attributed to the
// authenticated user.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), userID, service.ExerciseInput{
		Name:         req.Name,
		Category:     domain.ExerciseCategory(req.Category),
		MuscleGroup:  domain.MuscleGroup(req.MuscleGroup),
		Difficulty:   domain.Difficulty(req.Difficulty),
		Description:  req.Description,
		Instructions: req.Instructions,
		Equipment:    req.Equipment,
		VideoURL:     req.VideoURL,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListExercises lists catalog entries, optionally filtered by query params.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := repository.ExerciseFilter{
		Category:    domain.ExerciseCategory(c.Query("category")),
		MuscleGroup: domain.MuscleGroup(c.Query("muscleGroup")),
		Difficulty:  domain.Difficulty(c.Query("difficulty")),
		Search:      c.Query("search"),
	}
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise retrieves a single catalog entry by id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise applies a partial update; only the creator may modify.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), userID, exerciseID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes a catalog entry; only the creator may delete.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), userID, exerciseID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleFavorite flips the authenticated user's favorite mark on an entry.
func (h *ExerciseHandler) ToggleFavorite(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	favorited, err := h.exerciseService.ToggleFavorite(c.Request.Context(), userID, exerciseID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": favorited})
}

// ListFavorites lists the entries the user has starred.
func (h *ExerciseHandler) ListFavorites(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	exercises, err := h.exerciseService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// Categories lists the distinct categories present in the catalog.
func (h *ExerciseHandler) Categories(c *gin.Context) {
	categories, err := h.exerciseService.Categories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// MuscleGroups lists the distinct muscle groups present in the catalog.
func (h *ExerciseHandler) MuscleGroups(c *gin.Context) {
	groups, err := h.exerciseService.MuscleGroups(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
