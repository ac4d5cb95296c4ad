package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Statuses used in response envelopes
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// APIError is the error envelope returned to clients. Message is a string
// for most errors and a list of field violations for validation failures.
type APIError struct {
	Status  string      `json:"status"`
	Message interface{} `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if s, ok := e.Message.(string); ok {
		return s
	}
	return "validation failed"
}

// NewAPIError creates a new APIError
func NewAPIError(message interface{}) *APIError {
	return &APIError{
		Status:  StatusError,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message))
}

// ValidationFailed sends a 400 response carrying the field violation list
func ValidationFailed(c *gin.Context, violations interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(violations))
}

// Conflict sends a 400 response for uniqueness violations
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "already exists"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource is not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message))
}
