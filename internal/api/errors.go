package api

import (
	"errors"
	"net/http"

	"fittrack/internal/service"
	"fittrack/internal/validation"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service and validation errors onto HTTP status
// codes. Anything unrecognized becomes a 500 without leaking the message.
func handleServiceError(c *gin.Context, err error) {
	var valErr *validation.ValidationError
	var opErr *validation.InvalidOperationError

	switch {
	case errors.As(err, &valErr), errors.As(err, &opErr):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
