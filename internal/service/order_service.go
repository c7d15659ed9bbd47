package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/queue"
	"github.com/husncart/husncart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allowedOrderTransitions maps each status to the statuses it may move to.
var allowedOrderTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCanceled},
	constants.OrderStatusConfirmed: {constants.OrderStatusShipped, constants.OrderStatusCanceled},
	constants.OrderStatusShipped:   {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: {constants.OrderStatusReturned},
}

// OrderService runs the checkout pipeline and the order lifecycle.
type OrderService struct {
	orderRepo        repository.OrderRepository
	commissionRepo   repository.CommissionRepository
	affiliateService *AffiliateService
	tierService      *TierService
	pricingService   *PricingService
	shippingService  *ShippingService
	settingService   *SettingService
	queueClient      *queue.Client
	currency         string
	holdDays         int
}

// NewOrderService creates the order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	commissionRepo repository.CommissionRepository,
	affiliateService *AffiliateService,
	tierService *TierService,
	pricingService *PricingService,
	shippingService *ShippingService,
	settingService *SettingService,
	queueClient *queue.Client,
	currency string,
	holdDays int,
) *OrderService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderService{
		orderRepo:        orderRepo,
		commissionRepo:   commissionRepo,
		affiliateService: affiliateService,
		tierService:      tierService,
		pricingService:   pricingService,
		shippingService:  shippingService,
		settingService:   settingService,
		queueClient:      queueClient,
		currency:         currency,
		holdDays:         holdDays,
	}
}

// CustomerInput is the checkout customer block.
type CustomerInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ProvinceCode string `json:"province_code"`
}

// CreateOrderInput is the full checkout request.
type CreateOrderInput struct {
	Customer       CustomerInput
	Items          []OrderLineInput
	ShippingAmount *models.Money
	RefCode        string
	CookieRefCode  string
	ClientIP       string
}

// CreateOrder resolves the referral, tier, line prices and shipping
// charge, then persists the order header, its lines and the pending
// commission ledger row in one transaction. Side effects (receipt
// email, ad conversion) are queued after commit and never fail the
// checkout.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if err := validateCustomer(input.Customer); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	affiliateCfg, cfgErr := s.settingService.GetAffiliateConfig(s.holdDays)
	if cfgErr != nil {
		logger.Warnw("affiliate_config_load_failed", "error", cfgErr)
		affiliateCfg = AffiliateConfig{Enabled: true, HoldDays: s.holdDays}
	}

	var affiliate *models.Affiliate
	if affiliateCfg.Enabled {
		refCode := strings.TrimSpace(input.RefCode)
		if refCode == "" {
			refCode = strings.TrimSpace(input.CookieRefCode)
		}
		affiliate = s.affiliateService.ResolveReferral(refCode)
	}

	now := time.Now()
	tier := TierResolution{MultiplierPercent: defaultTierMultiplier}
	if affiliate != nil {
		tier = s.tierService.ResolveTier(affiliate.ID, now)
	}

	pricing, err := s.pricingService.PriceLines(input.Items, affiliate, tier.MultiplierPercent)
	if err != nil {
		return nil, err
	}

	shipping := s.resolveShippingAmount(input.ShippingAmount, pricing.ItemCount)
	grandTotal := pricing.ItemsSubtotal.Add(shipping).Round(2)

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		Status:         constants.OrderStatusPending,
		CustomerName:   strings.TrimSpace(input.Customer.Name),
		CustomerPhone:  strings.TrimSpace(input.Customer.Phone),
		CustomerEmail:  strings.TrimSpace(input.Customer.Email),
		Address:        strings.TrimSpace(input.Customer.Address),
		City:           strings.TrimSpace(input.Customer.City),
		ProvinceCode:   strings.TrimSpace(input.Customer.ProvinceCode),
		Currency:       s.currency,
		ItemCount:      pricing.ItemCount,
		TotalAmount:    models.NewMoneyFromDecimal(pricing.ItemsSubtotal),
		ShippingAmount: models.NewMoneyFromDecimal(shipping),
		GrandTotal:     models.NewMoneyFromDecimal(grandTotal),
		ClientIP:       strings.TrimSpace(input.ClientIP),
	}
	applyAffiliateSnapshot(order, affiliate, tier, pricing)

	items := make([]models.OrderItem, 0, len(pricing.Lines))
	for _, line := range pricing.Lines {
		items = append(items, models.OrderItem{
			ProductID:    line.ProductID,
			VariantID:    line.VariantID,
			NameSnapshot: line.NameSnapshot,
			SKUSnapshot:  line.SKUSnapshot,
			UnitPrice:    models.NewMoneyFromDecimal(line.UnitPrice.Round(2)),
			Quantity:     line.Quantity,
			LineTotal:    models.NewMoneyFromDecimal(line.LineTotal.Round(2)),
			ReturnStatus: constants.ReturnStatusNone,
		})
	}

	txErr := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		if affiliate != nil && pricing.FinalCommission.IsPositive() {
			commission := &models.AffiliateCommission{
				AffiliateID:       affiliate.ID,
				OrderID:           order.ID,
				BaseAmount:        models.NewMoneyFromDecimal(pricing.BaseCommission),
				MultiplierPercent: models.NewMoneyFromDecimal(tier.MultiplierPercent),
				Amount:            models.NewMoneyFromDecimal(pricing.FinalCommission),
				Status:            constants.CommissionStatusPending,
			}
			if err := s.commissionRepo.WithTx(tx).Create(commission); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	order.Items = items

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"item_count", order.ItemCount,
		"grand_total", order.GrandTotal.String(),
		"affiliate_id", order.AffiliateID,
	)
	s.enqueueOrderSideEffects(order)
	return order, nil
}

func validateCustomer(customer CustomerInput) error {
	if strings.TrimSpace(customer.Name) == "" ||
		strings.TrimSpace(customer.Phone) == "" ||
		strings.TrimSpace(customer.Address) == "" ||
		strings.TrimSpace(customer.City) == "" {
		return ErrInvalidCustomer
	}
	return nil
}

// resolveShippingAmount prefers a non-negative client-quoted amount and
// otherwise consults the shipping rule table.
func (s *OrderService) resolveShippingAmount(quoted *models.Money, totalQty int) decimal.Decimal {
	if quoted != nil && !quoted.Decimal.IsNegative() {
		return quoted.Decimal.Round(2)
	}
	return s.shippingService.ResolveShipping(totalQty).Round(2)
}

// applyAffiliateSnapshot freezes the resolved affiliate, tier and
// commission settings onto the order header. Without an affiliate the
// snapshot fields stay at their zero values.
func applyAffiliateSnapshot(order *models.Order, affiliate *models.Affiliate, tier TierResolution, pricing *PricingResult) {
	order.AffiliateTierMultiplier = models.NewMoneyFromDecimal(defaultTierMultiplier)
	if affiliate == nil {
		return
	}
	affiliateID := affiliate.ID
	order.AffiliateID = &affiliateID
	order.AffiliateRefCode = affiliate.RefCode
	order.AffiliateCommissionAmount = models.NewMoneyFromDecimal(pricing.FinalCommission)
	order.AffiliateBaseCommission = models.NewMoneyFromDecimal(pricing.BaseCommission)
	order.AffiliateTierMultiplier = models.NewMoneyFromDecimal(tier.MultiplierPercent)
	if tier.Tier != nil {
		tierID := tier.Tier.ID
		order.AffiliateTierID = &tierID
		order.AffiliateTierName = tier.Tier.Name
	}
	order.AffiliateCommissionRule = pricing.CommissionRule
	order.AffiliateCommissionTypeSnapshot = pricing.CommissionTypeSnapshot
	order.AffiliateCommissionValueSnapshot = models.NewMoneyFromDecimal(pricing.CommissionValueSnapshot)
	order.AffiliateBasePriceSnapshot = models.NewMoneyFromDecimal(pricing.BasePriceSnapshot.Round(2))
}

func (s *OrderService) enqueueOrderSideEffects(order *models.Order) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if strings.TrimSpace(order.CustomerEmail) != "" {
		if err := s.queueClient.EnqueueOrderReceiptEmail(queue.OrderReceiptEmailPayload{OrderID: order.ID}); err != nil {
			logger.Errorw("order_receipt_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	if err := s.queueClient.EnqueueAdConversion(queue.AdConversionPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Amount:  order.GrandTotal.String(),
	}); err != nil {
		logger.Errorw("ad_conversion_enqueue_failed", "order_id", order.ID, "error", err)
	}
}

// GetByID returns one order with its lines.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNoAndPhone is the guest-facing lookup. Both values must
// match so order numbers alone do not leak order contents.
func (s *OrderService) GetByOrderNoAndPhone(orderNo, phone string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	phone = strings.TrimSpace(phone)
	if orderNo == "" || phone == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndPhone(orderNo, phone)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin returns orders for the admin console.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus moves an order along the lifecycle. Delivery stamps
// delivered_at and schedules the commission for release after the hold
// window; cancellation and return void any unreleased commission.
func (s *OrderService) UpdateStatus(id uint, nextStatus string) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	nextStatus = strings.TrimSpace(nextStatus)
	if !transitionAllowed(order.Status, nextStatus) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{}
	switch nextStatus {
	case constants.OrderStatusDelivered:
		updates["delivered_at"] = now
	case constants.OrderStatusCanceled:
		updates["canceled_at"] = now
	}

	txErr := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).UpdateStatus(id, nextStatus, updates); err != nil {
			return err
		}
		switch nextStatus {
		case constants.OrderStatusDelivered:
			return s.scheduleCommissionRelease(tx, order, now)
		case constants.OrderStatusCanceled:
			_, err := s.commissionRepo.WithTx(tx).VoidByOrder(id, "order canceled", now)
			return err
		case constants.OrderStatusReturned:
			_, err := s.commissionRepo.WithTx(tx).VoidByOrder(id, "order returned", now)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Infow("order_status_updated",
		"order_id", id,
		"order_no", order.OrderNo,
		"from", order.Status,
		"to", nextStatus,
	)
	return s.GetByID(id)
}

// scheduleCommissionRelease stamps payable_at on the order's pending
// ledger row so the release worker can flip it after the hold window.
func (s *OrderService) scheduleCommissionRelease(tx *gorm.DB, order *models.Order, deliveredAt time.Time) error {
	if order.AffiliateID == nil {
		return nil
	}
	repo := s.commissionRepo.WithTx(tx)
	commission, err := repo.GetByOrderAndAffiliate(order.ID, *order.AffiliateID)
	if err != nil {
		return err
	}
	if commission == nil || commission.Status != constants.CommissionStatusPending {
		return nil
	}
	holdDays := s.holdDays
	if cfg, cfgErr := s.settingService.GetAffiliateConfig(s.holdDays); cfgErr == nil {
		holdDays = cfg.HoldDays
	}
	payableAt := deliveredAt.AddDate(0, 0, holdDays)
	commission.PayableAt = &payableAt
	return repo.Update(commission)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedOrderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("HC%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
