package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/husncart/husncart/internal/models"

	"gorm.io/gorm"
)

// AffiliateRepository is the affiliate data-access interface.
type AffiliateRepository interface {
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AffiliateRepository

	GetByID(id uint) (*models.Affiliate, error)
	GetByCode(code string) (*models.Affiliate, error)
	Create(affiliate *models.Affiliate) error
	Update(affiliate *models.Affiliate) error
	UpdateStatus(id uint, status string, active bool) error
	List(filter AffiliateListFilter) ([]models.Affiliate, int64, error)

	CreateClick(click *models.AffiliateClick) error
	CountClicksByAffiliate(affiliateID uint) (int64, error)
}

// GormAffiliateRepository is the GORM implementation.
type GormAffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository creates the affiliate repository.
func NewAffiliateRepository(db *gorm.DB) *GormAffiliateRepository {
	return &GormAffiliateRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAffiliateRepository) WithTx(tx *gorm.DB) AffiliateRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormAffiliateRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID fetches an affiliate by id.
func (r *GormAffiliateRepository) GetByID(id uint) (*models.Affiliate, error) {
	if id == 0 {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.First(&affiliate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetByCode fetches an affiliate by referral code. Input is trimmed and
// uppercased before the lookup; empty input short-circuits to (nil, nil).
func (r *GormAffiliateRepository) GetByCode(code string) (*models.Affiliate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.Where("ref_code = ?", normalized).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// Create inserts an affiliate.
func (r *GormAffiliateRepository) Create(affiliate *models.Affiliate) error {
	return r.db.Create(affiliate).Error
}

// Update saves an affiliate.
func (r *GormAffiliateRepository) Update(affiliate *models.Affiliate) error {
	return r.db.Save(affiliate).Error
}

// UpdateStatus updates only the status and active columns.
func (r *GormAffiliateRepository) UpdateStatus(id uint, status string, active bool) error {
	if id == 0 {
		return nil
	}
	return r.db.Model(&models.Affiliate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     strings.TrimSpace(status),
			"active":     active,
			"updated_at": time.Now(),
		}).Error
}

// List returns affiliates matching the filter.
func (r *GormAffiliateRepository) List(filter AffiliateListFilter) ([]models.Affiliate, int64, error) {
	var affiliates []models.Affiliate
	query := r.db.Model(&models.Affiliate{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"name", "phone", "ref_code"})
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
	if err := query.Find(&affiliates).Error; err != nil {
		return nil, 0, err
	}
	return affiliates, total, nil
}

// CreateClick records a referral-link visit.
func (r *GormAffiliateRepository) CreateClick(click *models.AffiliateClick) error {
	if click == nil || click.AffiliateID == 0 {
		return nil
	}
	return r.db.Create(click).Error
}

// CountClicksByAffiliate counts recorded visits for an affiliate.
func (r *GormAffiliateRepository) CountClicksByAffiliate(affiliateID uint) (int64, error) {
	if affiliateID == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.Model(&models.AffiliateClick{}).
		Where("affiliate_id = ?", affiliateID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
