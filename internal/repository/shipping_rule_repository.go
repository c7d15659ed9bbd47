package repository

import (
	"errors"

	"github.com/husncart/husncart/internal/models"

	"gorm.io/gorm"
)

// ShippingRuleRepository is the shipping-rule data-access interface.
type ShippingRuleRepository interface {
	GetByID(id uint) (*models.ShippingRule, error)
	ListActive() ([]models.ShippingRule, error)
	List() ([]models.ShippingRule, error)
	Create(rule *models.ShippingRule) error
	Update(rule *models.ShippingRule) error
	Delete(id uint) error
}

// GormShippingRuleRepository is the GORM implementation.
type GormShippingRuleRepository struct {
	db *gorm.DB
}

// NewShippingRuleRepository creates the shipping-rule repository.
func NewShippingRuleRepository(db *gorm.DB) *GormShippingRuleRepository {
	return &GormShippingRuleRepository{db: db}
}

// GetByID fetches a rule by id.
func (r *GormShippingRuleRepository) GetByID(id uint) (*models.ShippingRule, error) {
	if id == 0 {
		return nil, nil
	}
	var rule models.ShippingRule
	if err := r.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// ListActive returns active rules ordered by threshold ascending.
func (r *GormShippingRuleRepository) ListActive() ([]models.ShippingRule, error) {
	rules := make([]models.ShippingRule, 0)
	err := r.db.
		Where("active = ?", true).
		Order("min_qty ASC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// List returns all rules for the admin UI.
func (r *GormShippingRuleRepository) List() ([]models.ShippingRule, error) {
	rules := make([]models.ShippingRule, 0)
	err := r.db.Order("min_qty ASC, id ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Create inserts a rule.
func (r *GormShippingRuleRepository) Create(rule *models.ShippingRule) error {
	return r.db.Create(rule).Error
}

// Update saves a rule.
func (r *GormShippingRuleRepository) Update(rule *models.ShippingRule) error {
	return r.db.Save(rule).Error
}

// Delete soft-deletes a rule.
func (r *GormShippingRuleRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.ShippingRule{}, id).Error
}
