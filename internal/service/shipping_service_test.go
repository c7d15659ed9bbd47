package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupShippingServiceTest(t *testing.T) (*ShippingService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.ShippingRule{})
	return NewShippingService(repository.NewShippingRuleRepository(db)), db
}

func createShippingRule(t *testing.T, db *gorm.DB, minQty int, amount string, active bool) *models.ShippingRule {
	t.Helper()
	rule := &models.ShippingRule{MinQty: minQty, Amount: testMoney(t, amount), Active: active}
	if err := db.Create(rule).Error; err != nil {
		t.Fatalf("create shipping rule failed: %v", err)
	}
	if !active {
		// The Active column has a `default:true` tag, so GORM skips the
		// zero-value false on insert; persist it explicitly.
		if err := db.Model(rule).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate shipping rule failed: %v", err)
		}
	}
	return rule
}

func TestResolveShippingPicksBandByQuantity(t *testing.T) {
	svc, db := setupShippingServiceTest(t)

	createShippingRule(t, db, 0, "250", true)
	createShippingRule(t, db, 3, "150", true)
	createShippingRule(t, db, 6, "0", true)

	cases := []struct {
		qty  int
		want string
	}{
		{1, "250"},
		{2, "250"},
		{3, "150"},
		{5, "150"},
		{6, "0"},
		{20, "0"},
	}
	for _, tc := range cases {
		got := svc.ResolveShipping(tc.qty)
		if !got.Equal(mustDecimal(t, tc.want)) {
			t.Fatalf("qty %d: expected shipping %s, got %s", tc.qty, tc.want, got)
		}
	}
}

func TestResolveShippingIgnoresInactiveRules(t *testing.T) {
	svc, db := setupShippingServiceTest(t)

	createShippingRule(t, db, 0, "250", true)
	createShippingRule(t, db, 3, "150", false)

	got := svc.ResolveShipping(4)
	if !got.Equal(mustDecimal(t, "250")) {
		t.Fatalf("expected inactive rule skipped, got %s", got)
	}
}

func TestResolveShippingNoRulesMeansFree(t *testing.T) {
	svc, _ := setupShippingServiceTest(t)

	if got := svc.ResolveShipping(2); !got.IsZero() {
		t.Fatalf("expected free shipping without rules, got %s", got)
	}
}

func TestShippingRuleCreateValidation(t *testing.T) {
	svc, _ := setupShippingServiceTest(t)

	if _, err := svc.Create(ShippingRuleInput{MinQty: -1, Amount: testMoney(t, "100")}); !errors.Is(err, ErrShippingRuleInvalid) {
		t.Fatalf("expected ErrShippingRuleInvalid for negative qty, got %v", err)
	}
	if _, err := svc.Create(ShippingRuleInput{MinQty: 0, Amount: testMoney(t, "-10")}); !errors.Is(err, ErrShippingRuleInvalid) {
		t.Fatalf("expected ErrShippingRuleInvalid for negative amount, got %v", err)
	}

	rule, err := svc.Create(ShippingRuleInput{MinQty: 3, Amount: testMoney(t, "150"), Active: true})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	if rule.ID == 0 {
		t.Fatal("expected persisted rule id")
	}
}

func TestShippingRuleDelete(t *testing.T) {
	svc, db := setupShippingServiceTest(t)

	rule := createShippingRule(t, db, 0, "250", true)
	if err := svc.Delete(rule.ID); err != nil {
		t.Fatalf("delete rule failed: %v", err)
	}
	if _, err := svc.GetByID(rule.ID); !errors.Is(err, ErrShippingRuleNotFound) {
		t.Fatalf("expected ErrShippingRuleNotFound, got %v", err)
	}
}
