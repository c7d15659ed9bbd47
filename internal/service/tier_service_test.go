package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupTierServiceTest(t *testing.T) (*TierService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.CommissionTier{}, &models.Order{}, &models.OrderItem{})
	return NewTierService(repository.NewCommissionTierRepository(db), repository.NewOrderRepository(db)), db
}

func createDeliveredOrders(t *testing.T, db *gorm.DB, affiliateID uint, deliveredAt time.Time, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		orderNo := fmt.Sprintf("HCTIER%d%d%d", affiliateID, deliveredAt.UnixNano(), i)
		order := &models.Order{
			OrderNo:       orderNo,
			Status:        constants.OrderStatusDelivered,
			CustomerName:  "Customer",
			CustomerPhone: "03001234567",
			Address:       "1 Mall Road",
			City:          "Lahore",
			Currency:      constants.SiteCurrencyDefault,
			AffiliateID:   &affiliateID,
			DeliveredAt:   &deliveredAt,
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("create delivered order failed: %v", err)
		}
	}
}

func TestResolveTierPicksBandByDeliveredCount(t *testing.T) {
	svc, db := setupTierServiceTest(t)

	createTestTier(t, db, "Standard", 0, "100", true)
	silver := createTestTier(t, db, "Silver", 10, "110", true)
	createTestTier(t, db, "Gold", 25, "125", true)

	now := time.Now()
	createDeliveredOrders(t, db, 7, now.Add(-48*time.Hour), 12)

	resolution := svc.ResolveTier(7, now)
	if resolution.Tier == nil || resolution.Tier.ID != silver.ID {
		t.Fatalf("expected Silver tier, got %+v", resolution.Tier)
	}
	if !resolution.MultiplierPercent.Equal(mustDecimal(t, "110")) {
		t.Fatalf("expected multiplier 110, got %s", resolution.MultiplierPercent)
	}
	if resolution.DeliveredCount != 12 {
		t.Fatalf("expected delivered count 12, got %d", resolution.DeliveredCount)
	}
}

func TestResolveTierZeroDeliveredLandsOnDefault(t *testing.T) {
	svc, db := setupTierServiceTest(t)

	standard := createTestTier(t, db, "Standard", 0, "100", true)
	createTestTier(t, db, "Silver", 10, "110", true)

	resolution := svc.ResolveTier(3, time.Now())
	if resolution.Tier == nil || resolution.Tier.ID != standard.ID {
		t.Fatalf("expected default tier, got %+v", resolution.Tier)
	}
	if !resolution.MultiplierPercent.Equal(mustDecimal(t, "100")) {
		t.Fatalf("expected multiplier 100, got %s", resolution.MultiplierPercent)
	}
}

func TestResolveTierIgnoresInactiveTiers(t *testing.T) {
	svc, db := setupTierServiceTest(t)

	createTestTier(t, db, "Standard", 0, "100", true)
	silver := createTestTier(t, db, "Silver", 10, "110", true)
	createTestTier(t, db, "Gold", 25, "125", false)

	now := time.Now()
	createDeliveredOrders(t, db, 9, now.Add(-time.Hour), 30)

	resolution := svc.ResolveTier(9, now)
	if resolution.Tier == nil || resolution.Tier.ID != silver.ID {
		t.Fatalf("expected Silver with Gold inactive, got %+v", resolution.Tier)
	}
}

func TestResolveTierWithoutTiersFallsBackToHundred(t *testing.T) {
	svc, _ := setupTierServiceTest(t)

	resolution := svc.ResolveTier(4, time.Now())
	if resolution.Tier != nil {
		t.Fatalf("expected nil tier, got %+v", resolution.Tier)
	}
	if !resolution.MultiplierPercent.Equal(mustDecimal(t, "100")) {
		t.Fatalf("expected hardcoded multiplier 100, got %s", resolution.MultiplierPercent)
	}
}

func TestResolveTierIgnoresDeliveriesOutsideWindow(t *testing.T) {
	svc, db := setupTierServiceTest(t)

	standard := createTestTier(t, db, "Standard", 0, "100", true)
	createTestTier(t, db, "Silver", 10, "110", true)

	now := time.Now()
	createDeliveredOrders(t, db, 5, now.AddDate(0, 0, -(constants.TierWindowDays+10)), 12)

	resolution := svc.ResolveTier(5, now)
	if resolution.Tier == nil || resolution.Tier.ID != standard.ID {
		t.Fatalf("expected default tier for stale deliveries, got %+v", resolution.Tier)
	}
	if resolution.DeliveredCount != 0 {
		t.Fatalf("expected delivered count 0 inside window, got %d", resolution.DeliveredCount)
	}
}

func TestTierCreateValidation(t *testing.T) {
	svc, _ := setupTierServiceTest(t)

	if _, err := svc.Create(TierCreateInput{Name: "  ", MultiplierPercent: testMoney(t, "100")}); !errors.Is(err, ErrTierInvalid) {
		t.Fatalf("expected ErrTierInvalid for blank name, got %v", err)
	}
	if _, err := svc.Create(TierCreateInput{Name: "Bad", MinDeliveredOrders30d: -1, MultiplierPercent: testMoney(t, "100")}); !errors.Is(err, ErrTierInvalid) {
		t.Fatalf("expected ErrTierInvalid for negative threshold, got %v", err)
	}
	if _, err := svc.Create(TierCreateInput{Name: "Bad", MultiplierPercent: testMoney(t, "-5")}); !errors.Is(err, ErrTierInvalid) {
		t.Fatalf("expected ErrTierInvalid for negative multiplier, got %v", err)
	}

	tier, err := svc.Create(TierCreateInput{Name: "Gold", MinDeliveredOrders30d: 25, MultiplierPercent: testMoney(t, "125"), Active: true})
	if err != nil {
		t.Fatalf("create tier failed: %v", err)
	}
	if tier.ID == 0 || tier.Name != "Gold" {
		t.Fatalf("unexpected tier %+v", tier)
	}
}

func TestTierDeleteProtectsDefaultRow(t *testing.T) {
	svc, db := setupTierServiceTest(t)

	standard := createTestTier(t, db, "Standard", 0, "100", true)
	silver := createTestTier(t, db, "Silver", 10, "110", true)

	if err := svc.Delete(standard.ID); !errors.Is(err, ErrTierDefaultProtected) {
		t.Fatalf("expected ErrTierDefaultProtected, got %v", err)
	}
	if err := svc.Delete(silver.ID); err != nil {
		t.Fatalf("delete non-default tier failed: %v", err)
	}
	if _, err := svc.GetByID(silver.ID); !errors.Is(err, ErrTierNotFound) {
		t.Fatalf("expected ErrTierNotFound after delete, got %v", err)
	}
}
