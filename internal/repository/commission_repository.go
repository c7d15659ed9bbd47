package repository

import (
	"errors"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// CommissionRepository is the commission-ledger data-access interface.
type CommissionRepository interface {
	WithTx(tx *gorm.DB) CommissionRepository

	Create(commission *models.AffiliateCommission) error
	GetByID(id uint) (*models.AffiliateCommission, error)
	GetByOrderAndAffiliate(orderID, affiliateID uint) (*models.AffiliateCommission, error)
	ListByOrder(orderID uint) ([]models.AffiliateCommission, error)
	List(filter CommissionListFilter) ([]models.AffiliateCommission, int64, error)
	Update(commission *models.AffiliateCommission) error
	MarkDuePayable(now time.Time) (int64, error)
	VoidByOrder(orderID uint, reason string, now time.Time) (int64, error)
	SumByAffiliate(affiliateID uint, statuses []string) (decimal.Decimal, error)
}

// GormCommissionRepository is the GORM implementation.
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates the commission repository.
func NewCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCommissionRepository) WithTx(tx *gorm.DB) CommissionRepository {
	if tx == nil {
		return r
	}
	return &GormCommissionRepository{db: tx}
}

// Create inserts a ledger row.
func (r *GormCommissionRepository) Create(commission *models.AffiliateCommission) error {
	return r.db.Create(commission).Error
}

// GetByID fetches a ledger row by id.
func (r *GormCommissionRepository) GetByID(id uint) (*models.AffiliateCommission, error) {
	if id == 0 {
		return nil, nil
	}
	var commission models.AffiliateCommission
	if err := r.db.First(&commission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &commission, nil
}

// GetByOrderAndAffiliate fetches the ledger row for one order/affiliate pair.
func (r *GormCommissionRepository) GetByOrderAndAffiliate(orderID, affiliateID uint) (*models.AffiliateCommission, error) {
	if orderID == 0 || affiliateID == 0 {
		return nil, nil
	}
	var commission models.AffiliateCommission
	err := r.db.
		Where("order_id = ? AND affiliate_id = ?", orderID, affiliateID).
		First(&commission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &commission, nil
}

// ListByOrder returns the ledger rows for an order.
func (r *GormCommissionRepository) ListByOrder(orderID uint) ([]models.AffiliateCommission, error) {
	commissions := make([]models.AffiliateCommission, 0)
	if orderID == 0 {
		return commissions, nil
	}
	if err := r.db.Where("order_id = ?", orderID).Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// List returns ledger rows matching the filter.
func (r *GormCommissionRepository) List(filter CommissionListFilter) ([]models.AffiliateCommission, int64, error) {
	var commissions []models.AffiliateCommission
	query := r.db.Model(&models.AffiliateCommission{})

	if filter.AffiliateID != 0 {
		query = query.Where("affiliate_id = ?", filter.AffiliateID)
	}
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&commissions).Error; err != nil {
		return nil, 0, err
	}
	return commissions, total, nil
}

// Update saves a ledger row.
func (r *GormCommissionRepository) Update(commission *models.AffiliateCommission) error {
	return r.db.Save(commission).Error
}

// MarkDuePayable flips pending rows whose hold period has elapsed to
// payable. Returns the number of rows released.
func (r *GormCommissionRepository) MarkDuePayable(now time.Time) (int64, error) {
	result := r.db.Model(&models.AffiliateCommission{}).
		Where("status = ?", constants.CommissionStatusPending).
		Where("payable_at IS NOT NULL AND payable_at <= ?", now).
		Updates(map[string]interface{}{
			"status":     constants.CommissionStatusPayable,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// VoidByOrder voids every non-paid ledger row on an order. Paid rows are
// left untouched; paid is terminal.
func (r *GormCommissionRepository) VoidByOrder(orderID uint, reason string, now time.Time) (int64, error) {
	if orderID == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.AffiliateCommission{}).
		Where("order_id = ?", orderID).
		Where("status IN ?", []string{constants.CommissionStatusPending, constants.CommissionStatusPayable}).
		Updates(map[string]interface{}{
			"status":      constants.CommissionStatusVoid,
			"void_reason": reason,
			"updated_at":  now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SumByAffiliate sums ledger amounts for an affiliate over the given
// statuses.
func (r *GormCommissionRepository) SumByAffiliate(affiliateID uint, statuses []string) (decimal.Decimal, error) {
	if affiliateID == 0 || len(statuses) == 0 {
		return decimal.Zero, nil
	}
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.AffiliateCommission{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("affiliate_id = ?", affiliateID).
		Where("status IN ?", statuses).
		Take(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
