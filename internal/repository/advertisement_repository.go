package repository

import (
	"advertapp/internal/models"
	"gorm.io/gorm"
)

// GormAdvertisementRepository is a GORM implementation of AdvertisementRepository
type GormAdvertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository creates a new AdvertisementRepository
func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &GormAdvertisementRepository{db: db}
}

// Create inserts a new advertisement
func (r *GormAdvertisementRepository) Create(ad *models.Advertisement) error {
	return r.db.Create(ad).Error
}

// FindByID finds an advertisement by ID
func (r *GormAdvertisementRepository) FindByID(id uint64) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := r.db.First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// List retrieves all advertisements ordered by creation time
func (r *GormAdvertisementRepository) List() ([]models.Advertisement, int64, error) {
	var ads []models.Advertisement

	query := r.db.Model(&models.Advertisement{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created ASC, id ASC").Find(&ads).Error; err != nil {
		return nil, 0, err
	}

	return ads, total, nil
}

// UpdateFields applies the given column values to an advertisement. Callers
// are responsible for restricting the map to updatable columns.
func (r *GormAdvertisementRepository) UpdateFields(id uint64, fields map[string]interface{}) error {
	result := r.db.Model(&models.Advertisement{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an advertisement
func (r *GormAdvertisementRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Advertisement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
