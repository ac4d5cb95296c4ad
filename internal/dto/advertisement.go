package dto

import (
	"time"

	"advertapp/internal/models"
)

// AdvertisementListItemDTO represents an advertisement in list responses
type AdvertisementListItemDTO struct {
	ID      uint64    `json:"id"`
	Title   string    `json:"title"`
	Created time.Time `json:"created"`
}

// AdvertisementListResponse represents the advertisement collection response
type AdvertisementListResponse struct {
	Advertisements []AdvertisementListItemDTO `json:"advertisements"`
	Count          int64                      `json:"count"`
}

// AdvertisementDetailDTO represents a single advertisement in API responses
type AdvertisementDetailDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	UserID      uint64    `json:"id_user"`
}

// AdvertisementCreatedResponse is returned after a successful creation
type AdvertisementCreatedResponse struct {
	Status          string `json:"status"`
	AdvertisementID uint64 `json:"advertisement_id"`
}

// ToAdvertisementListItemDTO converts an Advertisement model to AdvertisementListItemDTO
func ToAdvertisementListItemDTO(ad models.Advertisement) AdvertisementListItemDTO {
	return AdvertisementListItemDTO{
		ID:      ad.ID,
		Title:   ad.Title,
		Created: ad.Created,
	}
}

// ToAdvertisementListResponse converts a slice of advertisements to AdvertisementListResponse
func ToAdvertisementListResponse(ads []models.Advertisement, count int64) AdvertisementListResponse {
	items := make([]AdvertisementListItemDTO, len(ads))
	for i, ad := range ads {
		items[i] = ToAdvertisementListItemDTO(ad)
	}
	return AdvertisementListResponse{
		Advertisements: items,
		Count:          count,
	}
}

// ToAdvertisementDetailDTO converts an Advertisement model to AdvertisementDetailDTO
func ToAdvertisementDetailDTO(ad models.Advertisement) AdvertisementDetailDTO {
	return AdvertisementDetailDTO{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Created:     ad.Created,
		UserID:      ad.UserID,
	}
}
