package service

import (
	"strings"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"
)

// CommissionService manages the commission ledger lifecycle:
// pending -> payable -> paid, with void reachable from any unpaid state.
type CommissionService struct {
	repo repository.CommissionRepository
}

// NewCommissionService creates the commission service.
func NewCommissionService(repo repository.CommissionRepository) *CommissionService {
	return &CommissionService{repo: repo}
}

// GetByID returns one ledger row.
func (s *CommissionService) GetByID(id uint) (*models.AffiliateCommission, error) {
	commission, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, ErrCommissionNotFound
	}
	return commission, nil
}

// List returns ledger rows for the admin console.
func (s *CommissionService) List(filter repository.CommissionListFilter) ([]models.AffiliateCommission, int64, error) {
	return s.repo.List(filter)
}

// ListByOrder returns the ledger rows attached to one order.
func (s *CommissionService) ListByOrder(orderID uint) ([]models.AffiliateCommission, error) {
	return s.repo.ListByOrder(orderID)
}

// ReleaseDue flips pending rows whose hold window has elapsed to
// payable. Returns the number of rows released.
func (s *CommissionService) ReleaseDue(now time.Time) (int64, error) {
	released, err := s.repo.MarkDuePayable(now)
	if err != nil {
		return 0, err
	}
	if released > 0 {
		logger.Infow("commission_released", "count", released)
	}
	return released, nil
}

// MarkPaid settles a payable row. Paid is terminal.
func (s *CommissionService) MarkPaid(id uint) (*models.AffiliateCommission, error) {
	commission, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commission.Status != constants.CommissionStatusPayable {
		return nil, ErrCommissionStatusInvalid
	}
	now := time.Now()
	commission.Status = constants.CommissionStatusPaid
	commission.PaidAt = &now
	if err := s.repo.Update(commission); err != nil {
		return nil, err
	}
	logger.Infow("commission_paid",
		"commission_id", commission.ID,
		"affiliate_id", commission.AffiliateID,
		"amount", commission.Amount.String(),
	)
	return commission, nil
}

// Void cancels an unpaid row. Paid rows are never reversed.
func (s *CommissionService) Void(id uint, reason string) (*models.AffiliateCommission, error) {
	commission, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commission.Status == constants.CommissionStatusPaid ||
		commission.Status == constants.CommissionStatusVoid {
		return nil, ErrCommissionStatusInvalid
	}
	commission.Status = constants.CommissionStatusVoid
	commission.VoidReason = strings.TrimSpace(reason)
	if err := s.repo.Update(commission); err != nil {
		return nil, err
	}
	logger.Infow("commission_voided",
		"commission_id", commission.ID,
		"affiliate_id", commission.AffiliateID,
		"reason", commission.VoidReason,
	)
	return commission, nil
}
