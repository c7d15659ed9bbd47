package service

import (
	"strings"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"github.com/shopspring/decimal"
)

// defaultTierMultiplier is the last-resort multiplier when no tier row
// can be resolved at all. 100 means the base commission stands as-is.
var defaultTierMultiplier = decimal.NewFromInt(100)

// TierService resolves commission tiers and manages the tier table.
type TierService struct {
	repo      repository.CommissionTierRepository
	orderRepo repository.OrderRepository
}

// NewTierService creates the tier service.
func NewTierService(repo repository.CommissionTierRepository, orderRepo repository.OrderRepository) *TierService {
	return &TierService{repo: repo, orderRepo: orderRepo}
}

// TierCreateInput carries the admin create payload.
type TierCreateInput struct {
	Name                  string
	MinDeliveredOrders30d int
	MultiplierPercent     models.Money
	Active                bool
	SortOrder             int
}

// TierResolution is the outcome of resolving an affiliate's tier.
// Tier is nil when resolution fell through to the hardcoded default.
type TierResolution struct {
	Tier              *models.CommissionTier
	MultiplierPercent decimal.Decimal
	DeliveredCount    int64
}

// ResolveTier maps an affiliate to its commission tier from the count
// of delivered orders over the trailing window. Resolution never fails:
// a broken count falls back to the zero-threshold tier row, and a
// missing tier table falls back to a 100 percent multiplier.
func (s *TierService) ResolveTier(affiliateID uint, now time.Time) TierResolution {
	tiers, err := s.repo.ListActive()
	if err != nil {
		logger.Warnw("commission_tier_list_failed", "affiliate_id", affiliateID, "error", err)
		tiers = nil
	}

	since := now.AddDate(0, 0, -constants.TierWindowDays)
	delivered, countErr := s.orderRepo.CountDeliveredByAffiliateSince(affiliateID, since)
	if countErr != nil {
		logger.Warnw("commission_tier_count_failed", "affiliate_id", affiliateID, "error", countErr)
	} else {
		if tier, ok := ResolveBand(tierBands(tiers), int(delivered)); ok {
			return TierResolution{Tier: tier, MultiplierPercent: tier.MultiplierPercent.Decimal, DeliveredCount: delivered}
		}
	}

	// count unavailable or below every threshold: take the default row
	for i := range tiers {
		if tiers[i].MinDeliveredOrders30d == 0 {
			return TierResolution{Tier: &tiers[i], MultiplierPercent: tiers[i].MultiplierPercent.Decimal, DeliveredCount: delivered}
		}
	}

	return TierResolution{MultiplierPercent: defaultTierMultiplier, DeliveredCount: delivered}
}

func tierBands(tiers []models.CommissionTier) []BandRule[*models.CommissionTier] {
	bands := make([]BandRule[*models.CommissionTier], 0, len(tiers))
	for i := range tiers {
		bands = append(bands, BandRule[*models.CommissionTier]{
			Threshold: tiers[i].MinDeliveredOrders30d,
			Payload:   &tiers[i],
		})
	}
	return bands
}

// GetByID returns one tier.
func (s *TierService) GetByID(id uint) (*models.CommissionTier, error) {
	tier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}
	return tier, nil
}

// List returns the full tier table for the admin console.
func (s *TierService) List() ([]models.CommissionTier, error) {
	return s.repo.List()
}

// Create adds a tier row.
func (s *TierService) Create(input TierCreateInput) (*models.CommissionTier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.MinDeliveredOrders30d < 0 {
		return nil, ErrTierInvalid
	}
	if input.MultiplierPercent.Decimal.IsNegative() {
		return nil, ErrTierInvalid
	}
	tier := &models.CommissionTier{
		Name:                  name,
		MinDeliveredOrders30d: input.MinDeliveredOrders30d,
		MultiplierPercent:     input.MultiplierPercent,
		Active:                input.Active,
		SortOrder:             input.SortOrder,
	}
	if err := s.repo.Create(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// Update edits a tier row.
func (s *TierService) Update(id uint, input TierCreateInput) (*models.CommissionTier, error) {
	tier, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || input.MinDeliveredOrders30d < 0 {
		return nil, ErrTierInvalid
	}
	if input.MultiplierPercent.Decimal.IsNegative() {
		return nil, ErrTierInvalid
	}
	tier.Name = name
	tier.MinDeliveredOrders30d = input.MinDeliveredOrders30d
	tier.MultiplierPercent = input.MultiplierPercent
	tier.Active = input.Active
	tier.SortOrder = input.SortOrder
	if err := s.repo.Update(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// Delete removes a tier row. The zero-threshold default row is kept so
// tier resolution always has a floor to land on.
func (s *TierService) Delete(id uint) error {
	tier, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if tier.MinDeliveredOrders30d == 0 {
		return ErrTierDefaultProtected
	}
	return s.repo.Delete(id)
}
