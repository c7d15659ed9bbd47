package service

import (
	"fmt"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PricingService prices order lines and derives the commission figures
// that get frozen onto the order.
type PricingService struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewPricingService creates the pricing service.
func NewPricingService(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *PricingService {
	return &PricingService{productRepo: productRepo, variantRepo: variantRepo}
}

// OrderLineInput is one requested cart line.
type OrderLineInput struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Qty       int  `json:"qty"`
}

// PricedLine is one cart line after pricing, ready to persist.
type PricedLine struct {
	ProductID    uint
	VariantID    uint
	NameSnapshot string
	SKUSnapshot  string
	UnitPrice    decimal.Decimal
	Quantity     int
	LineTotal    decimal.Decimal
}

// PricingResult carries per-line prices plus the order-level aggregates
// and the commission settings frozen from the first contributing line.
type PricingResult struct {
	Lines           []PricedLine
	ItemCount       int
	ItemsSubtotal   decimal.Decimal
	BaseCommission  decimal.Decimal
	FinalCommission decimal.Decimal

	// settings of the first line with a positive commission
	CommissionTypeSnapshot  string
	CommissionValueSnapshot decimal.Decimal
	BasePriceSnapshot       decimal.Decimal
	CommissionRule          string
}

// PriceLines prices the requested lines against current variant prices
// and, when an affiliate is attached, the owning products' affiliate
// settings. Discounts shape what the customer pays; commission is
// always computed from the undiscounted base price and scaled by the
// tier multiplier afterwards.
func (s *PricingService) PriceLines(items []OrderLineInput, affiliate *models.Affiliate, multiplierPercent decimal.Decimal) (*PricingResult, error) {
	requested := make([]OrderLineInput, 0, len(items))
	variantIDs := make([]uint, 0, len(items))
	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		if item.VariantID == 0 {
			return nil, ErrInvalidOrderItem
		}
		requested = append(requested, item)
		variantIDs = append(variantIDs, item.VariantID)
	}
	if len(requested) == 0 {
		return nil, ErrEmptyOrder
	}

	variants, err := s.variantRepo.GetByIDs(variantIDs)
	if err != nil {
		return nil, err
	}
	productIDs := make([]uint, 0, len(variants))
	for _, variant := range variants {
		productIDs = append(productIDs, variant.ProductID)
	}
	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, err
	}

	result := &PricingResult{Lines: make([]PricedLine, 0, len(requested))}
	for _, item := range requested {
		variant, ok := variants[item.VariantID]
		if !ok || !variant.IsActive {
			return nil, ErrInvalidOrderItem
		}
		product, ok := products[variant.ProductID]
		if !ok || !product.IsActive {
			return nil, ErrInvalidOrderItem
		}

		basePrice := variant.Price.Decimal
		qty := decimal.NewFromInt(int64(item.Qty))

		var discount, commission decimal.Decimal
		if affiliate != nil && product.AffiliateEnabled {
			discount = perUnitAmount(product.AffiliateDiscountType, product.AffiliateDiscountValue.Decimal, basePrice)
			if discount.IsNegative() {
				discount = decimal.Zero
			}
			if discount.GreaterThan(basePrice) {
				discount = basePrice
			}
			commission = perUnitAmount(product.AffiliateCommissionType, product.AffiliateCommissionValue.Decimal, basePrice)
			if commission.IsNegative() {
				commission = decimal.Zero
			}
		}

		unitPrice := basePrice.Sub(discount)
		lineTotal := unitPrice.Mul(qty)
		lineBaseCommission := commission.Mul(qty)

		if lineBaseCommission.IsPositive() {
			if result.CommissionTypeSnapshot == "" {
				result.CommissionTypeSnapshot = product.AffiliateCommissionType
				result.CommissionValueSnapshot = product.AffiliateCommissionValue.Decimal
			}
			if product.AffiliateCommissionType == constants.AffiliateCommissionTypePercent {
				result.BasePriceSnapshot = result.BasePriceSnapshot.Add(basePrice.Mul(qty))
			}
		}

		result.Lines = append(result.Lines, PricedLine{
			ProductID:    product.ID,
			VariantID:    variant.ID,
			NameSnapshot: product.Name,
			SKUSnapshot:  variant.SKU,
			UnitPrice:    unitPrice,
			Quantity:     item.Qty,
			LineTotal:    lineTotal,
		})
		result.ItemCount += item.Qty
		result.ItemsSubtotal = result.ItemsSubtotal.Add(lineTotal)
		result.BaseCommission = result.BaseCommission.Add(lineBaseCommission)
	}

	result.FinalCommission = result.BaseCommission.Mul(multiplierPercent).Div(oneHundred).Round(2)
	result.BaseCommission = result.BaseCommission.Round(2)
	result.ItemsSubtotal = result.ItemsSubtotal.Round(2)

	if result.FinalCommission.IsPositive() {
		result.CommissionRule = buildCommissionRule(result, multiplierPercent)
	}
	return result, nil
}

// perUnitAmount resolves a percent-or-fixed product setting into a
// per-unit money amount against the base price.
func perUnitAmount(kind string, value, basePrice decimal.Decimal) decimal.Decimal {
	switch kind {
	case constants.AffiliateCommissionTypePercent:
		return basePrice.Mul(value).Div(oneHundred)
	case constants.AffiliateCommissionTypeFixed:
		return value
	default:
		return decimal.Zero
	}
}

func buildCommissionRule(result *PricingResult, multiplierPercent decimal.Decimal) string {
	switch result.CommissionTypeSnapshot {
	case constants.AffiliateCommissionTypePercent:
		return fmt.Sprintf("%s%% of %s, tier x%s%%",
			result.CommissionValueSnapshot.String(),
			result.BasePriceSnapshot.Round(2).String(),
			multiplierPercent.String(),
		)
	case constants.AffiliateCommissionTypeFixed:
		return fmt.Sprintf("%s per unit, tier x%s%%",
			result.CommissionValueSnapshot.String(),
			multiplierPercent.String(),
		)
	default:
		return ""
	}
}
