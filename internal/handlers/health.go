package handlers

import (
	"net/http"

	apierrors "advertapp/internal/errors"
	"github.com/gin-gonic/gin"
)

// Check reports service liveness.
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": apierrors.StatusOK,
	})
}
