package services

import (
	"errors"
	"fmt"

	"advertapp/internal/models"
	"advertapp/internal/repository"
	"gorm.io/gorm"
)

var ErrAdvertisementNotFound = errors.New("advertisement is not found")

// AdvertisementService handles advertisement CRUD.
type AdvertisementService struct {
	adRepo repository.AdvertisementRepository
}

// NewAdvertisementService creates a new AdvertisementService.
func NewAdvertisementService(adRepo repository.AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{
		adRepo: adRepo,
	}
}

// CreateInput represents the required information to create an advertisement.
// UserID comes from the authenticated identity, never from client input.
type CreateInput struct {
	Title       string
	Description string
	UserID      uint64
}

// Create persists a new advertisement owned by the authenticated user.
func (s *AdvertisementService) Create(input CreateInput) (*models.Advertisement, error) {
	ad := &models.Advertisement{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := s.adRepo.Create(ad); err != nil {
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}

	return ad, nil
}

// Get retrieves an advertisement by ID.
func (s *AdvertisementService) Get(id uint64) (*models.Advertisement, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdvertisementNotFound
		}
		return nil, fmt.Errorf("failed to find advertisement: %w", err)
	}

	return ad, nil
}

// List retrieves all advertisements with the total count.
func (s *AdvertisementService) List() ([]models.Advertisement, int64, error) {
	ads, total, err := s.adRepo.List()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list advertisements: %w", err)
	}

	return ads, total, nil
}

// UpdateInput holds the partial update fields. Only title and description
// are updatable; owner and id can never be rewritten through this path.
type UpdateInput struct {
	Title       *string
	Description *string
}

// Update applies the allow-listed fields and returns the updated record.
func (s *AdvertisementService) Update(id uint64, input UpdateInput) (*models.Advertisement, error) {
	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if len(fields) > 0 {
		if err := s.adRepo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAdvertisementNotFound
			}
			return nil, fmt.Errorf("failed to update advertisement: %w", err)
		}
	}

	return s.Get(id)
}

// Delete removes an advertisement.
func (s *AdvertisementService) Delete(id uint64) error {
	if err := s.adRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdvertisementNotFound
		}
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}

	return nil
}
