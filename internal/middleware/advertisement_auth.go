package middleware

import (
	"errors"
	"strconv"

	"advertapp/internal/constants"
	apierrors "advertapp/internal/errors"
	"advertapp/internal/models"
	"advertapp/internal/services"
	"github.com/gin-gonic/gin"
)

// RequireAdvertisementOwner loads the advertisement from the path parameter
// and confirms the authenticated user owns it. Existence is checked before
// ownership, so a missing id is always 404 and never leaks through a 403.
func RequireAdvertisementOwner(advertService *services.AdvertisementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "invalid advertisement id")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		ad, err := advertService.Get(adID)
		if err != nil {
			if errors.Is(err, services.ErrAdvertisementNotFound) {
				apierrors.NotFound(c, err.Error())
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if ad.UserID != userID {
			apierrors.Forbidden(c, "advertisement belongs to another user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdvertisement, ad)
		c.Next()
	}
}

// GetAdvertisement retrieves the advertisement loaded by RequireAdvertisementOwner
func GetAdvertisement(c *gin.Context) (*models.Advertisement, bool) {
	value, exists := c.Get(constants.ContextKeyAdvertisement)
	if !exists {
		return nil, false
	}

	ad, ok := value.(*models.Advertisement)
	return ad, ok
}
