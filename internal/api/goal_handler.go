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

// GoalHandler serves the goal tracking endpoints.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type targetRequest struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
}

type CreateGoalRequest struct {
	Title       string        `json:"title" binding:"required"`
	Type        string        `json:"type" binding:"required"`
	Target      targetRequest `json:"target" binding:"required"`
	TargetDate  time.Time     `json:"targetDate" binding:"required"`
	StartDate   time.Time     `json:"startDate"`
	Priority    string        `json:"priority"`
	Description string        `json:"description"`
}

// CreateGoal records a new goal for the authenticated user.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, service.GoalInput{
		Title:       req.Title,
		Type:        domain.GoalType(req.Type),
		Target:      domain.Target{Value: req.Target.Value, Unit: req.Target.Unit},
		TargetDate:  req.TargetDate,
		StartDate:   req.StartDate,
		Priority:    domain.GoalPriority(req.Priority),
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// ListGoals lists the user's goals, optionally filtered by type, status or
// priority.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	filter := repository.GoalFilter{
		Type:     domain.GoalType(c.Query("type")),
		Status:   domain.GoalStatus(c.Query("status")),
		Priority: domain.GoalPriority(c.Query("priority")),
	}
	goals, err := h.goalService.ListGoals(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoal retrieves one of the user's goals by id.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoal applies a partial update to one of the user's goals.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, goalID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes one of the user's goals.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateProgressRequest struct {
	Value float64 `json:"value" binding:"required"`
	Notes string  `json:"notes"`
}

// UpdateProgress records a progress value; reaching the target completes
// the goal.
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	goal, err := h.goalService.UpdateProgress(c.Request.Context(), userID, goalID, req.Value, req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type addMilestoneRequest struct {
	Title       string  `json:"title" binding:"required"`
	TargetValue float64 `json:"targetValue"`
}

// AddMilestone appends a milestone to one of the user's goals.
func (h *GoalHandler) AddMilestone(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var req addMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	goal, err := h.goalService.AddMilestone(c.Request.Context(), userID, goalID, req.Title, req.TargetValue)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// CompleteMilestone marks one of a goal's milestones achieved.
func (h *GoalHandler) CompleteMilestone(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}
	milestoneID, err := primitive.ObjectIDFromHex(c.Param("milestoneId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid milestone ID format")
		return
	}

	goal, err := h.goalService.CompleteMilestone(c.Request.Context(), userID, goalID, milestoneID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type addReminderRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	Message string    `json:"message" binding:"required"`
}

// AddReminder appends a reminder to one of the user's goals.
func (h *GoalHandler) AddReminder(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var req addReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	goal, err := h.goalService.AddReminder(c.Request.Context(), userID, goalID, req.Date, req.Message)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Stats returns the per-type goal counts.
func (h *GoalHandler) Stats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	byType, err := h.goalService.Stats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, byType)
}
