package middleware

import (
	"errors"

	"advertapp/internal/constants"
	apierrors "advertapp/internal/errors"
	"advertapp/internal/services"
	"github.com/gin-gonic/gin"
)

// RequireAuth authenticates the request via the Login/Password headers.
// Missing headers and a wrong password are both reported as 401; an unknown
// login is reported as 404.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		login := c.GetHeader(constants.HeaderLogin)
		password := c.GetHeader(constants.HeaderPassword)

		if login == "" || password == "" {
			apierrors.Unauthorized(c, "Login and Password headers are required")
			c.Abort()
			return
		}

		user, err := authService.Authenticate(login, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				apierrors.NotFound(c, "user is not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				apierrors.Unauthorized(c, err.Error())
			default:
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
