package api

import (
	"fmt"
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler serves the workout log endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type workoutExerciseRequest struct {
	Exercise string              `json:"exercise" binding:"required"`
	Sets     []workoutSetRequest `json:"sets"`
	Notes    string              `json:"notes"`
}

type workoutSetRequest struct {
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
	Distance float64 `json:"distance"`
	Notes    string  `json:"notes"`
}

type CreateWorkoutRequest struct {
	Name       string                   `json:"name" binding:"required"`
	Type       string                   `json:"type" binding:"required"`
	Exercises  []workoutExerciseRequest `json:"exercises"`
	Duration   int                      `json:"duration" binding:"required"`
	Difficulty string                   `json:"difficulty" binding:"required"`
	Date       time.Time                `json:"date"`
	Notes      string                   `json:"notes"`
}

// CreateWorkout records a new workout for the authenticated user. Calories
// are derived server-side from type and duration.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercises, err := mapWorkoutExercises(req.Exercises)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, service.WorkoutInput{
		Name:       req.Name,
		Type:       domain.WorkoutType(req.Type),
		Exercises:  exercises,
		Duration:   req.Duration,
		Difficulty: domain.Difficulty(req.Difficulty),
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts lists the authenticated user's workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout retrieves one of the user's workouts by id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout applies a partial update to one of the user's workouts.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes one of the user's workouts.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type completeWorkoutRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// CompleteWorkout marks a workout done with an optional rating and feedback.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	var req completeWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	workout, err := h.workoutService.CompleteWorkout(c.Request.Context(), userID, workoutID, req.Rating, req.Feedback)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Stats returns the per-day workout time series.
func (h *WorkoutHandler) Stats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	days, err := h.workoutService.Stats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func mapWorkoutExercises(reqs []workoutExerciseRequest) ([]domain.WorkoutExercise, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	exercises := make([]domain.WorkoutExercise, 0, len(reqs))
	for _, r := range reqs {
		id, err := primitive.ObjectIDFromHex(r.Exercise)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise ID %q", r.Exercise)
		}
		entry := domain.WorkoutExercise{ExerciseID: id, Notes: r.Notes}
		for _, s := range r.Sets {
			entry.Sets = append(entry.Sets, domain.ExerciseSet{
				Reps:     s.Reps,
				Weight:   s.Weight,
				Duration: s.Duration,
				Distance: s.Distance,
				Notes:    s.Notes,
			})
		}
		exercises = append(exercises, entry)
	}
	return exercises, nil
}
