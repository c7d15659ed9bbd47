package service

import (
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"github.com/shopspring/decimal"
)

// ShippingService resolves the shipping charge for an order quantity
// and manages the shipping-rule table.
type ShippingService struct {
	repo repository.ShippingRuleRepository
}

// NewShippingService creates the shipping service.
func NewShippingService(repo repository.ShippingRuleRepository) *ShippingService {
	return &ShippingService{repo: repo}
}

// ShippingRuleInput carries the admin create/update payload.
type ShippingRuleInput struct {
	MinQty int
	Amount models.Money
	Active bool
}

// ResolveShipping picks the rule with the largest min_qty satisfied by
// the order's total quantity. No matching rule means free shipping.
// Rule lookup failures are logged and fall back to zero so checkout is
// never blocked by the shipping table.
func (s *ShippingService) ResolveShipping(totalQty int) decimal.Decimal {
	rules, err := s.repo.ListActive()
	if err != nil {
		logger.Warnw("shipping_rule_list_failed", "error", err)
		return decimal.Zero
	}
	bands := make([]BandRule[decimal.Decimal], 0, len(rules))
	for _, rule := range rules {
		bands = append(bands, BandRule[decimal.Decimal]{Threshold: rule.MinQty, Payload: rule.Amount.Decimal})
	}
	if amount, ok := ResolveBand(bands, totalQty); ok {
		return amount
	}
	return decimal.Zero
}

// GetByID returns one rule.
func (s *ShippingService) GetByID(id uint) (*models.ShippingRule, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrShippingRuleNotFound
	}
	return rule, nil
}

// List returns the full rule table for the admin console.
func (s *ShippingService) List() ([]models.ShippingRule, error) {
	return s.repo.List()
}

// Create adds a rule.
func (s *ShippingService) Create(input ShippingRuleInput) (*models.ShippingRule, error) {
	if input.MinQty < 0 || input.Amount.Decimal.IsNegative() {
		return nil, ErrShippingRuleInvalid
	}
	rule := &models.ShippingRule{
		MinQty: input.MinQty,
		Amount: input.Amount,
		Active: input.Active,
	}
	if err := s.repo.Create(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Update edits a rule.
func (s *ShippingService) Update(id uint, input ShippingRuleInput) (*models.ShippingRule, error) {
	rule, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.MinQty < 0 || input.Amount.Decimal.IsNegative() {
		return nil, ErrShippingRuleInvalid
	}
	rule.MinQty = input.MinQty
	rule.Amount = input.Amount
	rule.Active = input.Active
	if err := s.repo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Delete removes a rule.
func (s *ShippingService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
