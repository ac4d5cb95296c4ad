package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"advertapp/internal/dto"
	apierrors "advertapp/internal/errors"
	"advertapp/internal/middleware"
	"advertapp/internal/services"
	"advertapp/internal/validation"
	"github.com/gin-gonic/gin"
)

// AdvertisementHandler coordinates advertisement-related HTTP handlers.
type AdvertisementHandler struct {
	advertService *services.AdvertisementService
}

// NewAdvertisementHandler creates a new AdvertisementHandler.
func NewAdvertisementHandler(advertService *services.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{
		advertService: advertService,
	}
}

// ListAdvertisements returns all advertisements with the total count.
func (h *AdvertisementHandler) ListAdvertisements(c *gin.Context) {
	ads, total, err := h.advertService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvertisementListResponse(ads, total))
}

// GetAdvertisement returns a single advertisement.
func (h *AdvertisementHandler) GetAdvertisement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "invalid advertisement id")
		return
	}

	ad, err := h.advertService.Get(id)
	if err != nil {
		respondAdvertisementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvertisementDetailDTO(*ad))
}

// CreateAdvertisement creates an advertisement owned by the authenticated user.
func (h *AdvertisementHandler) CreateAdvertisement(c *gin.Context) {
	type CreateRequest struct {
		Title       string `json:"title" binding:"required,max=100"`
		Description string `json:"description" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if violations, ok := validation.FieldErrors(err); ok {
			apierrors.ValidationFailed(c, violations)
			return
		}
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	ad, err := h.advertService.Create(services.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	})
	if err != nil {
		respondAdvertisementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AdvertisementCreatedResponse{
		Status:          apierrors.StatusOK,
		AdvertisementID: ad.ID,
	})
}

// UpdateAdvertisement applies a partial update to an owned advertisement.
// Only title and description are updatable; other payload fields are ignored.
func (h *AdvertisementHandler) UpdateAdvertisement(c *gin.Context) {
	type UpdateRequest struct {
		Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
		Description *string `json:"description" binding:"omitempty,min=1"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if violations, ok := validation.FieldErrors(err); ok {
			apierrors.ValidationFailed(c, violations)
			return
		}
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	ad, exists := middleware.GetAdvertisement(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	updated, err := h.advertService.Update(ad.ID, services.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondAdvertisementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvertisementDetailDTO(*updated))
}

// DeleteAdvertisement removes an owned advertisement.
func (h *AdvertisementHandler) DeleteAdvertisement(c *gin.Context) {
	ad, exists := middleware.GetAdvertisement(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.advertService.Delete(ad.ID); err != nil {
		respondAdvertisementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": apierrors.StatusOK,
	})
}

func respondAdvertisementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdvertisementNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
