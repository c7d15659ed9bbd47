package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupParlourServiceTest(t *testing.T) (*ParlourService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Parlour{}, &models.ParlourPricingTier{}, &models.Product{}, &models.Variant{})
	return NewParlourService(repository.NewParlourRepository(db), repository.NewVariantRepository(db)), db
}

func createTestParlour(t *testing.T, db *gorm.DB, phone string) *models.Parlour {
	t.Helper()
	parlour := &models.Parlour{
		Name:   "Glow Studio",
		Phone:  phone,
		City:   "Karachi",
		Status: constants.ParlourStatusActive,
	}
	if err := db.Create(parlour).Error; err != nil {
		t.Fatalf("create parlour failed: %v", err)
	}
	return parlour
}

func createParlourTier(t *testing.T, db *gorm.DB, productID uint, minQty int, unitPrice, discountPercent string, active bool) *models.ParlourPricingTier {
	t.Helper()
	tier := &models.ParlourPricingTier{ProductID: productID, MinQty: minQty, Active: active}
	if unitPrice != "" {
		price := testMoney(t, unitPrice)
		tier.UnitPrice = &price
	}
	if discountPercent != "" {
		discount := testMoney(t, discountPercent)
		tier.DiscountPercent = &discount
	}
	if err := db.Create(tier).Error; err != nil {
		t.Fatalf("create parlour tier failed: %v", err)
	}
	if !active {
		// The Active column has a `default:true` tag, so GORM skips the
		// zero-value false on insert; persist it explicitly.
		if err := db.Model(tier).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate parlour tier failed: %v", err)
		}
	}
	return tier
}

func TestQuoteFlatUnitPriceTier(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03001111111")
	product := createTestProduct(t, db, "kajal-bulk", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "KJL-BLK", "450")
	tier := createParlourTier(t, db, product.ID, 10, "380", "", true)

	quote, err := svc.Quote(parlour.ID, variant.ID, 12)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.UnitPrice.Equal(mustDecimal(t, "380")) {
		t.Fatalf("expected wholesale unit price 380, got %s", quote.UnitPrice)
	}
	if !quote.LineTotal.Equal(mustDecimal(t, "4560")) {
		t.Fatalf("expected line total 4560, got %s", quote.LineTotal)
	}
	if !quote.RetailPrice.Equal(mustDecimal(t, "450")) {
		t.Fatalf("expected retail 450, got %s", quote.RetailPrice)
	}
	if quote.TierID == nil || *quote.TierID != tier.ID {
		t.Fatalf("expected tier %d, got %v", tier.ID, quote.TierID)
	}
}

func TestQuoteDiscountPercentTier(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03002222222")
	product := createTestProduct(t, db, "serum-bulk", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "SRM-30", "2400")
	createParlourTier(t, db, product.ID, 10, "", "15", true)

	quote, err := svc.Quote(parlour.ID, variant.ID, 10)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.UnitPrice.Equal(mustDecimal(t, "2040")) {
		t.Fatalf("expected 15%% off 2400 = 2040, got %s", quote.UnitPrice)
	}
}

func TestQuoteRetailFallbackBelowBands(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03003333333")
	product := createTestProduct(t, db, "oil-bulk", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "OIL-100", "1350")
	createParlourTier(t, db, product.ID, 10, "1200", "", true)

	quote, err := svc.Quote(parlour.ID, variant.ID, 5)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.UnitPrice.Equal(mustDecimal(t, "1350")) {
		t.Fatalf("expected retail fallback 1350, got %s", quote.UnitPrice)
	}
	if quote.TierID != nil {
		t.Fatalf("expected no tier below all bands, got %v", quote.TierID)
	}
}

func TestQuoteIgnoresInactiveTiers(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03004444444")
	product := createTestProduct(t, db, "mask-bulk", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "MSK-1", "800")
	createParlourTier(t, db, product.ID, 10, "600", "", false)

	quote, err := svc.Quote(parlour.ID, variant.ID, 20)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.UnitPrice.Equal(mustDecimal(t, "800")) {
		t.Fatalf("expected retail with inactive tier, got %s", quote.UnitPrice)
	}
}

func TestQuoteSuspendedParlour(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03005555555")
	if err := db.Model(&models.Parlour{}).Where("id = ?", parlour.ID).
		Update("status", constants.ParlourStatusSuspended).Error; err != nil {
		t.Fatalf("suspend parlour failed: %v", err)
	}
	product := createTestProduct(t, db, "susp-bulk", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "SP-1", "100")

	if _, err := svc.Quote(parlour.ID, variant.ID, 10); !errors.Is(err, ErrParlourSuspended) {
		t.Fatalf("expected ErrParlourSuspended, got %v", err)
	}
}

func TestQuoteInputValidation(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03006666666")

	if _, err := svc.Quote(parlour.ID, 1, 0); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem for zero qty, got %v", err)
	}
	if _, err := svc.Quote(parlour.ID, 999, 5); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
	if _, err := svc.Quote(404, 1, 5); !errors.Is(err, ErrParlourNotFound) {
		t.Fatalf("expected ErrParlourNotFound, got %v", err)
	}
}

func TestParlourCreatePhoneUnique(t *testing.T) {
	svc, _ := setupParlourServiceTest(t)

	first, err := svc.Create(ParlourCreateInput{Name: "Glow Studio", Phone: "03007777777", City: "Lahore"})
	if err != nil {
		t.Fatalf("create parlour failed: %v", err)
	}
	if first.Status != constants.ParlourStatusActive {
		t.Fatalf("expected active status, got %q", first.Status)
	}

	if _, err := svc.Create(ParlourCreateInput{Name: "Copy Cat", Phone: "03007777777"}); !errors.Is(err, ErrParlourPhoneTaken) {
		t.Fatalf("expected ErrParlourPhoneTaken, got %v", err)
	}
	if _, err := svc.Create(ParlourCreateInput{Name: "", Phone: "03008888888"}); !errors.Is(err, ErrParlourInvalid) {
		t.Fatalf("expected ErrParlourInvalid, got %v", err)
	}
}

func TestParlourTierValidation(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	product := createTestProduct(t, db, "tier-validate", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")

	if _, err := svc.CreateTier(ParlourTierInput{ProductID: product.ID, MinQty: 10}); !errors.Is(err, ErrParlourTierInvalid) {
		t.Fatalf("expected ErrParlourTierInvalid without a price rule, got %v", err)
	}
	negative := testMoney(t, "-10")
	if _, err := svc.CreateTier(ParlourTierInput{ProductID: product.ID, MinQty: 10, UnitPrice: &negative}); !errors.Is(err, ErrParlourTierInvalid) {
		t.Fatalf("expected ErrParlourTierInvalid for negative price, got %v", err)
	}
	if _, err := svc.CreateTier(ParlourTierInput{ProductID: 0, MinQty: 10, UnitPrice: &negative}); !errors.Is(err, ErrParlourTierInvalid) {
		t.Fatalf("expected ErrParlourTierInvalid without product, got %v", err)
	}

	price := testMoney(t, "380")
	tier, err := svc.CreateTier(ParlourTierInput{ProductID: product.ID, MinQty: 10, UnitPrice: &price, Active: true})
	if err != nil {
		t.Fatalf("create tier failed: %v", err)
	}
	if tier.ID == 0 {
		t.Fatal("expected persisted tier id")
	}
}

func TestParlourAddStrikeBands(t *testing.T) {
	svc, db := setupParlourServiceTest(t)

	parlour := createTestParlour(t, db, "03009999999")

	svc.AddStrike(parlour.ID, "")
	second, err := svc.AddStrike(parlour.ID, "late payment")
	if err != nil {
		t.Fatalf("strike failed: %v", err)
	}
	if second.StrikeCount != 2 || second.Status != constants.ParlourStatusWarning {
		t.Fatalf("after 2 strikes expected warning, got count=%d status=%q", second.StrikeCount, second.Status)
	}

	svc.AddStrike(parlour.ID, "")
	fourth, err := svc.AddStrike(parlour.ID, "")
	if err != nil {
		t.Fatalf("strike failed: %v", err)
	}
	if fourth.StrikeCount != 4 || fourth.Status != constants.ParlourStatusSuspended {
		t.Fatalf("after 4 strikes expected suspended, got count=%d status=%q", fourth.StrikeCount, fourth.Status)
	}
}
