package repository

import (
	"errors"

	"github.com/husncart/husncart/internal/models"

	"gorm.io/gorm"
)

// VariantRepository is the variant data-access interface.
type VariantRepository interface {
	GetByID(id uint) (*models.Variant, error)
	GetByIDs(ids []uint) (map[uint]models.Variant, error)
	ListByProduct(productID uint) ([]models.Variant, error)
	Create(variant *models.Variant) error
	Update(variant *models.Variant) error
	Delete(id uint) error
}

// GormVariantRepository is the GORM implementation.
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates the variant repository.
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// GetByID fetches a variant by id.
func (r *GormVariantRepository) GetByID(id uint) (*models.Variant, error) {
	if id == 0 {
		return nil, nil
	}
	var variant models.Variant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// GetByIDs fetches variants keyed by id.
func (r *GormVariantRepository) GetByIDs(ids []uint) (map[uint]models.Variant, error) {
	result := make(map[uint]models.Variant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var variants []models.Variant
	if err := r.db.Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	for _, variant := range variants {
		result[variant.ID] = variant
	}
	return result, nil
}

// ListByProduct returns a product's variants.
func (r *GormVariantRepository) ListByProduct(productID uint) ([]models.Variant, error) {
	variants := make([]models.Variant, 0)
	if productID == 0 {
		return variants, nil
	}
	err := r.db.
		Where("product_id = ?", productID).
		Order("sort_order DESC, id ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// Create inserts a variant.
func (r *GormVariantRepository) Create(variant *models.Variant) error {
	return r.db.Create(variant).Error
}

// Update saves a variant.
func (r *GormVariantRepository) Update(variant *models.Variant) error {
	return r.db.Save(variant).Error
}

// Delete soft-deletes a variant.
func (r *GormVariantRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Variant{}, id).Error
}
