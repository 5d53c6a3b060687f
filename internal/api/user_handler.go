package api

import (
	"fmt"
	"net/http"
	"time"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Cap avatar uploads well below Mongo document limits; the bytes go to S3.
const maxAvatarSize = 5 << 20 // 5 MiB

// UserHandler serves profile, avatar and weight history endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} domain.User
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile update. The body is a free-form
// object checked against the profile allowlist, so a disallowed field is a
// 400 rather than silently dropped.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadAvatar accepts a multipart image, stores it in object storage and
// returns the download URL.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing 'avatar' form file")
		return
	}
	if fileHeader.Size > maxAvatarSize {
		abortWithError(c, http.StatusBadRequest, "Avatar exceeds the 5 MiB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.userService.UploadAvatar(c.Request.Context(), userID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}

// WeightHistory returns the user's logged weight entries.
func (h *UserHandler) WeightHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	history, err := h.userService.WeightHistory(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

type addWeightRequest struct {
	Weight float64   `json:"weight" binding:"required"`
	Date   time.Time `json:"date"`
}

// AddWeight appends a weight entry and returns the updated history.
func (h *UserHandler) AddWeight(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req addWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	history, err := h.userService.AddWeightEntry(c.Request.Context(), userID, req.Weight, req.Date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, history)
}
