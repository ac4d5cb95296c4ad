package repository

import (
	"advertapp/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user inside a transaction
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByUsername finds a user by exact username match
	FindByUsername(username string) (*models.User, error)

	// List retrieves all users with their advertisements
	List() ([]models.User, error)
}

// AdvertisementRepository defines the interface for advertisement data access
type AdvertisementRepository interface {
	// Create inserts a new advertisement
	Create(ad *models.Advertisement) error

	// FindByID finds an advertisement by ID
	FindByID(id uint64) (*models.Advertisement, error)

	// List retrieves all advertisements with the total count
	List() ([]models.Advertisement, int64, error)

	// UpdateFields applies the given column values to an advertisement
	UpdateFields(id uint64, fields map[string]interface{}) error

	// Delete removes an advertisement
	Delete(id uint64) error
}
