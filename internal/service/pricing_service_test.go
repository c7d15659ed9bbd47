package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPricingServiceTest(t *testing.T) (*PricingService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Product{}, &models.Variant{})
	return NewPricingService(repository.NewProductRepository(db), repository.NewVariantRepository(db)), db
}

func TestPriceLinesPercentDiscountAndCommission(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "rose-glow-serum", true,
		constants.AffiliateDiscountTypePercent, "5",
		constants.AffiliateCommissionTypePercent, "10")
	variant := createTestVariant(t, db, product.ID, "RGS-30", "2400")
	affiliate := &models.Affiliate{Name: "Ayesha", RefCode: "AYESHA1", Active: true, Status: constants.AffiliateStatusActive}

	result, err := svc.PriceLines(
		[]OrderLineInput{{VariantID: variant.ID, Qty: 2}},
		affiliate,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(result.Lines))
	}
	line := result.Lines[0]
	if !line.UnitPrice.Equal(mustDecimal(t, "2280")) {
		t.Fatalf("expected discounted unit price 2280, got %s", line.UnitPrice)
	}
	if !line.LineTotal.Equal(mustDecimal(t, "4560")) {
		t.Fatalf("expected line total 4560, got %s", line.LineTotal)
	}
	if result.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", result.ItemCount)
	}
	if !result.ItemsSubtotal.Equal(mustDecimal(t, "4560")) {
		t.Fatalf("expected subtotal 4560, got %s", result.ItemsSubtotal)
	}
	// commission is 10% of the undiscounted 2400, not of 2280
	if !result.BaseCommission.Equal(mustDecimal(t, "480")) {
		t.Fatalf("expected base commission 480, got %s", result.BaseCommission)
	}
	if !result.FinalCommission.Equal(mustDecimal(t, "480")) {
		t.Fatalf("expected final commission 480, got %s", result.FinalCommission)
	}
	if result.CommissionTypeSnapshot != constants.AffiliateCommissionTypePercent {
		t.Fatalf("expected percent snapshot, got %q", result.CommissionTypeSnapshot)
	}
	if !result.CommissionValueSnapshot.Equal(mustDecimal(t, "10")) {
		t.Fatalf("expected snapshot value 10, got %s", result.CommissionValueSnapshot)
	}
	if !result.BasePriceSnapshot.Equal(mustDecimal(t, "4800")) {
		t.Fatalf("expected base price snapshot 4800, got %s", result.BasePriceSnapshot)
	}
	if result.CommissionRule == "" {
		t.Fatal("expected a commission rule string")
	}
}

func TestPriceLinesFixedDiscountClampedToBasePrice(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "kajal-classic", true,
		constants.AffiliateDiscountTypeFixed, "500",
		constants.AffiliateCommissionTypeFixed, "60")
	variant := createTestVariant(t, db, product.ID, "KJL-BLK", "450")
	affiliate := &models.Affiliate{Name: "A", RefCode: "A", Active: true, Status: constants.AffiliateStatusActive}

	result, err := svc.PriceLines(
		[]OrderLineInput{{VariantID: variant.ID, Qty: 1}},
		affiliate,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if !result.Lines[0].UnitPrice.IsZero() {
		t.Fatalf("expected discount clamped to base, unit price 0, got %s", result.Lines[0].UnitPrice)
	}
	// fixed commission still paid from the base price
	if !result.BaseCommission.Equal(mustDecimal(t, "60")) {
		t.Fatalf("expected base commission 60, got %s", result.BaseCommission)
	}
	if result.CommissionTypeSnapshot != constants.AffiliateCommissionTypeFixed {
		t.Fatalf("expected fixed snapshot, got %q", result.CommissionTypeSnapshot)
	}
	// fixed lines never contribute to the percent base snapshot
	if !result.BasePriceSnapshot.IsZero() {
		t.Fatalf("expected zero base price snapshot, got %s", result.BasePriceSnapshot)
	}
}

func TestPriceLinesSnapshotFromFirstCommissionLine(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	fixed := createTestProduct(t, db, "fixed-first", true,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypeFixed, "60")
	percent := createTestProduct(t, db, "percent-second", true,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "10")
	fixedVariant := createTestVariant(t, db, fixed.ID, "FX-1", "450")
	percentVariant := createTestVariant(t, db, percent.ID, "PC-1", "1000")
	affiliate := &models.Affiliate{Name: "A", RefCode: "A", Active: true, Status: constants.AffiliateStatusActive}

	result, err := svc.PriceLines(
		[]OrderLineInput{
			{VariantID: fixedVariant.ID, Qty: 1},
			{VariantID: percentVariant.ID, Qty: 2},
		},
		affiliate,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	// first contributing line fixes type and value
	if result.CommissionTypeSnapshot != constants.AffiliateCommissionTypeFixed {
		t.Fatalf("expected first line's fixed type, got %q", result.CommissionTypeSnapshot)
	}
	if !result.CommissionValueSnapshot.Equal(mustDecimal(t, "60")) {
		t.Fatalf("expected first line's value 60, got %s", result.CommissionValueSnapshot)
	}
	// percent lines still accumulate into the base price snapshot
	if !result.BasePriceSnapshot.Equal(mustDecimal(t, "2000")) {
		t.Fatalf("expected base price snapshot 2000, got %s", result.BasePriceSnapshot)
	}
	// 60 + 2*100
	if !result.BaseCommission.Equal(mustDecimal(t, "260")) {
		t.Fatalf("expected base commission 260, got %s", result.BaseCommission)
	}
}

func TestPriceLinesTierMultiplierScalesCommission(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "argan-oil", true,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "10")
	variant := createTestVariant(t, db, product.ID, "AHO-100", "1350")
	affiliate := &models.Affiliate{Name: "A", RefCode: "A", Active: true, Status: constants.AffiliateStatusActive}

	result, err := svc.PriceLines(
		[]OrderLineInput{{VariantID: variant.ID, Qty: 1}},
		affiliate,
		mustDecimal(t, "125"),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if !result.BaseCommission.Equal(mustDecimal(t, "135")) {
		t.Fatalf("expected base commission 135, got %s", result.BaseCommission)
	}
	if !result.FinalCommission.Equal(mustDecimal(t, "168.75")) {
		t.Fatalf("expected final commission 168.75, got %s", result.FinalCommission)
	}
}

func TestPriceLinesNoAffiliateSkipsCommission(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "no-aff", true,
		constants.AffiliateDiscountTypePercent, "5",
		constants.AffiliateCommissionTypePercent, "10")
	variant := createTestVariant(t, db, product.ID, "NA-1", "2400")

	result, err := svc.PriceLines(
		[]OrderLineInput{{VariantID: variant.ID, Qty: 1}},
		nil,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if !result.Lines[0].UnitPrice.Equal(mustDecimal(t, "2400")) {
		t.Fatalf("expected full retail 2400, got %s", result.Lines[0].UnitPrice)
	}
	if !result.FinalCommission.IsZero() {
		t.Fatalf("expected zero commission, got %s", result.FinalCommission)
	}
	if result.CommissionTypeSnapshot != "" || result.CommissionRule != "" {
		t.Fatalf("expected empty snapshot, got type=%q rule=%q", result.CommissionTypeSnapshot, result.CommissionRule)
	}
}

func TestPriceLinesProductNotInProgram(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "off-program", false,
		constants.AffiliateDiscountTypePercent, "5",
		constants.AffiliateCommissionTypePercent, "10")
	variant := createTestVariant(t, db, product.ID, "OP-1", "1000")
	affiliate := &models.Affiliate{Name: "A", RefCode: "A", Active: true, Status: constants.AffiliateStatusActive}

	result, err := svc.PriceLines(
		[]OrderLineInput{{VariantID: variant.ID, Qty: 1}},
		affiliate,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if !result.Lines[0].UnitPrice.Equal(mustDecimal(t, "1000")) {
		t.Fatalf("expected full retail, got %s", result.Lines[0].UnitPrice)
	}
	if !result.BaseCommission.IsZero() {
		t.Fatalf("expected zero commission, got %s", result.BaseCommission)
	}
}

func TestPriceLinesFiltersNonPositiveQuantities(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "qty-filter", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "QF-1", "100")

	result, err := svc.PriceLines(
		[]OrderLineInput{
			{VariantID: variant.ID, Qty: 0},
			{VariantID: variant.ID, Qty: -3},
			{VariantID: variant.ID, Qty: 2},
		},
		nil,
		decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatalf("price lines failed: %v", err)
	}
	if len(result.Lines) != 1 || result.ItemCount != 2 {
		t.Fatalf("expected single line of qty 2, got %d lines, count %d", len(result.Lines), result.ItemCount)
	}
}

func TestPriceLinesAllLinesFiltered(t *testing.T) {
	svc, _ := setupPricingServiceTest(t)

	_, err := svc.PriceLines([]OrderLineInput{{VariantID: 1, Qty: 0}}, nil, decimal.NewFromInt(100))
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestPriceLinesUnknownVariant(t *testing.T) {
	svc, _ := setupPricingServiceTest(t)

	_, err := svc.PriceLines([]OrderLineInput{{VariantID: 999, Qty: 1}}, nil, decimal.NewFromInt(100))
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem, got %v", err)
	}
}

func TestPriceLinesInactiveVariantRejected(t *testing.T) {
	svc, db := setupPricingServiceTest(t)

	product := createTestProduct(t, db, "inactive-variant", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "IV-1", "100")
	if err := db.Model(&models.Variant{}).Where("id = ?", variant.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate variant failed: %v", err)
	}

	_, err := svc.PriceLines([]OrderLineInput{{VariantID: variant.ID, Qty: 1}}, nil, decimal.NewFromInt(100))
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem, got %v", err)
	}
}
