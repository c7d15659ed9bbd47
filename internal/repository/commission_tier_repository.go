package repository

import (
	"errors"

	"github.com/husncart/husncart/internal/models"

	"gorm.io/gorm"
)

// CommissionTierRepository is the tier-table data-access interface.
type CommissionTierRepository interface {
	GetByID(id uint) (*models.CommissionTier, error)
	ListActive() ([]models.CommissionTier, error)
	List() ([]models.CommissionTier, error)
	Create(tier *models.CommissionTier) error
	Update(tier *models.CommissionTier) error
	Delete(id uint) error
}

// GormCommissionTierRepository is the GORM implementation.
type GormCommissionTierRepository struct {
	db *gorm.DB
}

// NewCommissionTierRepository creates the tier repository.
func NewCommissionTierRepository(db *gorm.DB) *GormCommissionTierRepository {
	return &GormCommissionTierRepository{db: db}
}

// GetByID fetches a tier by id.
func (r *GormCommissionTierRepository) GetByID(id uint) (*models.CommissionTier, error) {
	if id == 0 {
		return nil, nil
	}
	var tier models.CommissionTier
	if err := r.db.First(&tier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

// ListActive returns active tiers ordered by threshold ascending, which is
// the order band resolution expects.
func (r *GormCommissionTierRepository) ListActive() ([]models.CommissionTier, error) {
	tiers := make([]models.CommissionTier, 0)
	err := r.db.
		Where("active = ?", true).
		Order("min_delivered_orders_30d ASC, id ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

// List returns all tiers for the admin UI.
func (r *GormCommissionTierRepository) List() ([]models.CommissionTier, error) {
	tiers := make([]models.CommissionTier, 0)
	err := r.db.
		Order("min_delivered_orders_30d ASC, id ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

// Create inserts a tier.
func (r *GormCommissionTierRepository) Create(tier *models.CommissionTier) error {
	return r.db.Create(tier).Error
}

// Update saves a tier.
func (r *GormCommissionTierRepository) Update(tier *models.CommissionTier) error {
	return r.db.Save(tier).Error
}

// Delete soft-deletes a tier.
func (r *GormCommissionTierRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.CommissionTier{}, id).Error
}
