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

// parlour strike thresholds mapped onto a status band
var parlourStrikeBands = []BandRule[string]{
	{Threshold: 0, Payload: constants.ParlourStatusActive},
	{Threshold: 2, Payload: constants.ParlourStatusWarning},
	{Threshold: 4, Payload: constants.ParlourStatusSuspended},
}

// ParlourService manages parlour accounts and wholesale price quotes.
type ParlourService struct {
	repo        repository.ParlourRepository
	variantRepo repository.VariantRepository
}

// NewParlourService creates the parlour service.
func NewParlourService(repo repository.ParlourRepository, variantRepo repository.VariantRepository) *ParlourService {
	return &ParlourService{repo: repo, variantRepo: variantRepo}
}

// ParlourCreateInput carries the admin create payload.
type ParlourCreateInput struct {
	Name  string
	Phone string
	City  string
	Notes string
}

// ParlourTierInput carries the admin pricing-tier payload. Exactly one
// of UnitPrice or DiscountPercent should be set.
type ParlourTierInput struct {
	ProductID       uint
	MinQty          int
	UnitPrice       *models.Money
	DiscountPercent *models.Money
	Active          bool
}

// ParlourQuote is the wholesale quote for one variant and quantity.
type ParlourQuote struct {
	VariantID   uint         `json:"variant_id"`
	Quantity    int          `json:"quantity"`
	RetailPrice models.Money `json:"retail_price"`
	UnitPrice   models.Money `json:"unit_price"`
	LineTotal   models.Money `json:"line_total"`
	TierID      *uint        `json:"tier_id,omitempty"`
}

// Quote resolves the wholesale unit price for a parlour buying qty
// units of a variant. The pricing band with the largest min_qty
// satisfied by qty wins; with no band the retail price stands.
func (s *ParlourService) Quote(parlourID, variantID uint, qty int) (*ParlourQuote, error) {
	if qty <= 0 || variantID == 0 {
		return nil, ErrInvalidOrderItem
	}
	parlour, err := s.GetByID(parlourID)
	if err != nil {
		return nil, err
	}
	if parlour.Status == constants.ParlourStatusSuspended {
		return nil, ErrParlourSuspended
	}

	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || !variant.IsActive {
		return nil, ErrVariantNotFound
	}

	retail := variant.Price.Decimal
	unitPrice := retail
	var tierID *uint

	tiers, err := s.repo.ListActiveTiersByProduct(variant.ProductID)
	if err != nil {
		logger.Warnw("parlour_tier_list_failed", "product_id", variant.ProductID, "error", err)
	} else {
		bands := make([]BandRule[*models.ParlourPricingTier], 0, len(tiers))
		for i := range tiers {
			bands = append(bands, BandRule[*models.ParlourPricingTier]{
				Threshold: tiers[i].MinQty,
				Payload:   &tiers[i],
			})
		}
		if tier, ok := ResolveBand(bands, qty); ok {
			unitPrice = tierUnitPrice(tier, retail)
			id := tier.ID
			tierID = &id
		}
	}

	unitPrice = unitPrice.Round(2)
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
	return &ParlourQuote{
		VariantID:   variantID,
		Quantity:    qty,
		RetailPrice: models.NewMoneyFromDecimal(retail),
		UnitPrice:   models.NewMoneyFromDecimal(unitPrice),
		LineTotal:   models.NewMoneyFromDecimal(lineTotal),
		TierID:      tierID,
	}, nil
}

// tierUnitPrice applies a band to the retail price: a flat unit price
// wins outright, otherwise the percent discount comes off retail.
// Prices never go negative.
func tierUnitPrice(tier *models.ParlourPricingTier, retail decimal.Decimal) decimal.Decimal {
	if tier.UnitPrice != nil {
		if tier.UnitPrice.Decimal.IsNegative() {
			return decimal.Zero
		}
		return tier.UnitPrice.Decimal
	}
	if tier.DiscountPercent != nil {
		discount := retail.Mul(tier.DiscountPercent.Decimal).Div(oneHundred)
		if discount.IsNegative() {
			discount = decimal.Zero
		}
		if discount.GreaterThan(retail) {
			discount = retail
		}
		return retail.Sub(discount)
	}
	return retail
}

// GetByID returns one parlour.
func (s *ParlourService) GetByID(id uint) (*models.Parlour, error) {
	parlour, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parlour == nil {
		return nil, ErrParlourNotFound
	}
	return parlour, nil
}

// List returns parlours for the admin console.
func (s *ParlourService) List(filter repository.ParlourListFilter) ([]models.Parlour, int64, error) {
	return s.repo.List(filter)
}

// Create registers a parlour. Phone numbers are unique.
func (s *ParlourService) Create(input ParlourCreateInput) (*models.Parlour, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, ErrParlourInvalid
	}
	existing, err := s.repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrParlourPhoneTaken
	}
	parlour := &models.Parlour{
		Name:   name,
		Phone:  phone,
		City:   strings.TrimSpace(input.City),
		Notes:  strings.TrimSpace(input.Notes),
		Status: constants.ParlourStatusActive,
	}
	if err := s.repo.Create(parlour); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrParlourPhoneTaken
		}
		return nil, err
	}
	return parlour, nil
}

// Update applies admin edits.
func (s *ParlourService) Update(id uint, input ParlourCreateInput) (*models.Parlour, error) {
	parlour, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		parlour.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		parlour.Phone = phone
	}
	parlour.City = strings.TrimSpace(input.City)
	parlour.Notes = strings.TrimSpace(input.Notes)
	if err := s.repo.Update(parlour); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrParlourPhoneTaken
		}
		return nil, err
	}
	return parlour, nil
}

// UpdateStatus sets the parlour status directly.
func (s *ParlourService) UpdateStatus(id uint, rawStatus string) (*models.Parlour, error) {
	status := strings.TrimSpace(rawStatus)
	switch status {
	case constants.ParlourStatusActive,
		constants.ParlourStatusWarning,
		constants.ParlourStatusSuspended:
	default:
		return nil, ErrParlourStatusInvalid
	}
	parlour, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(id, status, time.Now()); err != nil {
		return nil, err
	}
	parlour.Status = status
	return parlour, nil
}

// AddStrike increments the strike counter and re-bands the status.
func (s *ParlourService) AddStrike(id uint, note string) (*models.Parlour, error) {
	parlour, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	parlour.StrikeCount++
	if status, ok := ResolveBand(parlourStrikeBands, parlour.StrikeCount); ok {
		parlour.Status = status
	}
	if note = strings.TrimSpace(note); note != "" {
		if parlour.Notes != "" {
			parlour.Notes += "\n"
		}
		parlour.Notes += note
	}
	if err := s.repo.Update(parlour); err != nil {
		return nil, err
	}
	logger.Infow("parlour_strike_added",
		"parlour_id", parlour.ID,
		"strike_count", parlour.StrikeCount,
		"status", parlour.Status,
	)
	return parlour, nil
}

// GetTier returns one pricing tier.
func (s *ParlourService) GetTier(id uint) (*models.ParlourPricingTier, error) {
	tier, err := s.repo.GetTierByID(id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrParlourTierNotFound
	}
	return tier, nil
}

// ListTiers returns all pricing tiers for a product.
func (s *ParlourService) ListTiers(productID uint) ([]models.ParlourPricingTier, error) {
	return s.repo.ListTiersByProduct(productID)
}

// CreateTier adds a pricing tier.
func (s *ParlourService) CreateTier(input ParlourTierInput) (*models.ParlourPricingTier, error) {
	if err := validateParlourTier(input); err != nil {
		return nil, err
	}
	tier := &models.ParlourPricingTier{
		ProductID:       input.ProductID,
		MinQty:          input.MinQty,
		UnitPrice:       input.UnitPrice,
		DiscountPercent: input.DiscountPercent,
		Active:          input.Active,
	}
	if err := s.repo.CreateTier(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// UpdateTier edits a pricing tier.
func (s *ParlourService) UpdateTier(id uint, input ParlourTierInput) (*models.ParlourPricingTier, error) {
	tier, err := s.GetTier(id)
	if err != nil {
		return nil, err
	}
	if err := validateParlourTier(input); err != nil {
		return nil, err
	}
	tier.ProductID = input.ProductID
	tier.MinQty = input.MinQty
	tier.UnitPrice = input.UnitPrice
	tier.DiscountPercent = input.DiscountPercent
	tier.Active = input.Active
	if err := s.repo.UpdateTier(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// DeleteTier removes a pricing tier.
func (s *ParlourService) DeleteTier(id uint) error {
	if _, err := s.GetTier(id); err != nil {
		return err
	}
	return s.repo.DeleteTier(id)
}

func validateParlourTier(input ParlourTierInput) error {
	if input.ProductID == 0 || input.MinQty < 0 {
		return ErrParlourTierInvalid
	}
	if input.UnitPrice == nil && input.DiscountPercent == nil {
		return ErrParlourTierInvalid
	}
	if input.UnitPrice != nil && input.UnitPrice.Decimal.IsNegative() {
		return ErrParlourTierInvalid
	}
	if input.DiscountPercent != nil && input.DiscountPercent.Decimal.IsNegative() {
		return ErrParlourTierInvalid
	}
	return nil
}
