package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"advertapp/internal/dto"
	apierrors "advertapp/internal/errors"
	"advertapp/internal/services"
	"advertapp/internal/validation"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all users with their advertisement counts.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// GetUser returns a single user with their advertisements.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailDTO(*user))
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type RegisterRequest struct {
		Username string  `json:"username" binding:"required,min=2,max=32"`
		Password string  `json:"password" binding:"required,min=8,max=200,passwordpolicy"`
		Email    *string `json:"email" binding:"omitempty"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if violations, ok := validation.FieldErrors(err); ok {
			apierrors.ValidationFailed(c, violations)
			return
		}
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserCreatedResponse{
		Status: apierrors.StatusOK,
		UserID: user.ID,
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "user is not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		apierrors.Conflict(c, "user already exists")
	default:
		apierrors.InternalError(c, "")
	}
}
