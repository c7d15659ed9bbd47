package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func testMoney(t *testing.T, value string) models.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", value, err)
	}
	return models.Money{Decimal: d}
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, affiliateEnabled bool, discountType, discountValue, commissionType, commissionValue string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:                     slug,
		Name:                     slug,
		AffiliateEnabled:         affiliateEnabled,
		AffiliateDiscountType:    discountType,
		AffiliateDiscountValue:   testMoney(t, discountValue),
		AffiliateCommissionType:  commissionType,
		AffiliateCommissionValue: testMoney(t, commissionValue),
		IsActive:                 true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createTestVariant(t *testing.T, db *gorm.DB, productID uint, sku, price string) *models.Variant {
	t.Helper()
	variant := &models.Variant{
		ProductID: productID,
		SKU:       sku,
		Price:     testMoney(t, price),
		IsActive:  true,
	}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func createTestAffiliate(t *testing.T, db *gorm.DB, code string) *models.Affiliate {
	t.Helper()
	affiliate := &models.Affiliate{
		Name:    "Affiliate " + code,
		RefCode: code,
		Active:  true,
		Status:  constants.AffiliateStatusActive,
	}
	if err := db.Create(affiliate).Error; err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	return affiliate
}

func createTestTier(t *testing.T, db *gorm.DB, name string, minDelivered int, multiplier string, active bool) *models.CommissionTier {
	t.Helper()
	tier := &models.CommissionTier{
		Name:                  name,
		MinDeliveredOrders30d: minDelivered,
		MultiplierPercent:     testMoney(t, multiplier),
		Active:                active,
	}
	if err := db.Create(tier).Error; err != nil {
		t.Fatalf("create tier failed: %v", err)
	}
	if !active {
		// The Active column has a `default:true` tag, so GORM skips the
		// zero-value false on insert; persist it explicitly.
		if err := db.Model(tier).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate tier failed: %v", err)
		}
	}
	return tier
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q failed: %v", value, err)
	}
	return d
}
