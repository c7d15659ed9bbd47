package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/husncart/husncart/internal/models"

	"gorm.io/gorm"
)

// ParlourRepository is the parlour + pricing-tier data-access interface.
type ParlourRepository interface {
	GetByID(id uint) (*models.Parlour, error)
	GetByPhone(phone string) (*models.Parlour, error)
	Create(parlour *models.Parlour) error
	Update(parlour *models.Parlour) error
	UpdateStatus(id uint, status string, updatedAt time.Time) error
	List(filter ParlourListFilter) ([]models.Parlour, int64, error)

	GetTierByID(id uint) (*models.ParlourPricingTier, error)
	ListActiveTiersByProduct(productID uint) ([]models.ParlourPricingTier, error)
	ListTiersByProduct(productID uint) ([]models.ParlourPricingTier, error)
	CreateTier(tier *models.ParlourPricingTier) error
	UpdateTier(tier *models.ParlourPricingTier) error
	DeleteTier(id uint) error
}

// GormParlourRepository is the GORM implementation.
type GormParlourRepository struct {
	db *gorm.DB
}

// NewParlourRepository creates the parlour repository.
func NewParlourRepository(db *gorm.DB) *GormParlourRepository {
	return &GormParlourRepository{db: db}
}

// GetByID fetches a parlour by id.
func (r *GormParlourRepository) GetByID(id uint) (*models.Parlour, error) {
	if id == 0 {
		return nil, nil
	}
	var parlour models.Parlour
	if err := r.db.First(&parlour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parlour, nil
}

// GetByPhone fetches a parlour by its phone handle.
func (r *GormParlourRepository) GetByPhone(phone string) (*models.Parlour, error) {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil, nil
	}
	var parlour models.Parlour
	if err := r.db.Where("phone = ?", trimmed).First(&parlour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parlour, nil
}

// Create inserts a parlour.
func (r *GormParlourRepository) Create(parlour *models.Parlour) error {
	return r.db.Create(parlour).Error
}

// Update saves a parlour.
func (r *GormParlourRepository) Update(parlour *models.Parlour) error {
	return r.db.Save(parlour).Error
}

// UpdateStatus updates only the status column.
func (r *GormParlourRepository) UpdateStatus(id uint, status string, updatedAt time.Time) error {
	if id == 0 {
		return nil
	}
	return r.db.Model(&models.Parlour{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     strings.TrimSpace(status),
			"updated_at": updatedAt,
		}).Error
}

// List returns parlours matching the filter.
func (r *GormParlourRepository) List(filter ParlourListFilter) ([]models.Parlour, int64, error) {
	var parlours []models.Parlour
	query := r.db.Model(&models.Parlour{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city = ?", city)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"name", "phone"})
		if condition != "" {
			like := "%" + search + "%"
			query = query.Where(condition, repeatLikeArgs(like, argCount)...)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&parlours).Error; err != nil {
		return nil, 0, err
	}
	return parlours, total, nil
}

// GetTierByID fetches a pricing tier by id.
func (r *GormParlourRepository) GetTierByID(id uint) (*models.ParlourPricingTier, error) {
	if id == 0 {
		return nil, nil
	}
	var tier models.ParlourPricingTier
	if err := r.db.First(&tier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

// ListActiveTiersByProduct returns a product's active pricing tiers
// ordered by threshold ascending.
func (r *GormParlourRepository) ListActiveTiersByProduct(productID uint) ([]models.ParlourPricingTier, error) {
	tiers := make([]models.ParlourPricingTier, 0)
	if productID == 0 {
		return tiers, nil
	}
	err := r.db.
		Where("product_id = ? AND active = ?", productID, true).
		Order("min_qty ASC, id ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

// ListTiersByProduct returns all of a product's pricing tiers.
func (r *GormParlourRepository) ListTiersByProduct(productID uint) ([]models.ParlourPricingTier, error) {
	tiers := make([]models.ParlourPricingTier, 0)
	if productID == 0 {
		return tiers, nil
	}
	err := r.db.
		Where("product_id = ?", productID).
		Order("min_qty ASC, id ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

// CreateTier inserts a pricing tier.
func (r *GormParlourRepository) CreateTier(tier *models.ParlourPricingTier) error {
	return r.db.Create(tier).Error
}

// UpdateTier saves a pricing tier.
func (r *GormParlourRepository) UpdateTier(tier *models.ParlourPricingTier) error {
	return r.db.Save(tier).Error
}

// DeleteTier soft-deletes a pricing tier.
func (r *GormParlourRepository) DeleteTier(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.ParlourPricingTier{}, id).Error
}
