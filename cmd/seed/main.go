package main

import (
	"github.com/husncart/husncart/internal/config"
	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	seedCommissionTiers(stdLog.Printf)
	seedShippingRules(stdLog.Printf)
	seedProducts(stdLog.Printf)
	seedAffiliates(stdLog.Printf)

	stdLog.Printf("Seed finished")
}

type printf func(format string, v ...interface{})

// seedCommissionTiers installs the default ladder. The zero-threshold
// row is the fallback every affiliate lands on.
func seedCommissionTiers(logf printf) {
	tiers := []models.CommissionTier{
		{Name: "Standard", MinDeliveredOrders30d: 0, MultiplierPercent: money("100"), Active: true, SortOrder: 0},
		{Name: "Silver", MinDeliveredOrders30d: 10, MultiplierPercent: money("110"), Active: true, SortOrder: 1},
		{Name: "Gold", MinDeliveredOrders30d: 25, MultiplierPercent: money("125"), Active: true, SortOrder: 2},
	}
	for _, tier := range tiers {
		var existing models.CommissionTier
		if err := models.DB.Where("name = ?", tier.Name).First(&existing).Error; err == nil {
			logf("Commission tier already exists: %s", tier.Name)
			continue
		}
		if err := models.DB.Create(&tier).Error; err != nil {
			logf("Failed to create commission tier %s: %v", tier.Name, err)
			continue
		}
		logf("Created commission tier: %s", tier.Name)
	}
}

func seedShippingRules(logf printf) {
	rules := []models.ShippingRule{
		{MinQty: 0, Amount: money("250"), Active: true},
		{MinQty: 3, Amount: money("150"), Active: true},
		{MinQty: 6, Amount: money("0"), Active: true},
	}
	for _, rule := range rules {
		var existing models.ShippingRule
		if err := models.DB.Where("min_qty = ?", rule.MinQty).First(&existing).Error; err == nil {
			logf("Shipping rule already exists: min_qty=%d", rule.MinQty)
			continue
		}
		if err := models.DB.Create(&rule).Error; err != nil {
			logf("Failed to create shipping rule min_qty=%d: %v", rule.MinQty, err)
			continue
		}
		logf("Created shipping rule: min_qty=%d", rule.MinQty)
	}
}

func seedProducts(logf printf) {
	products := []models.Product{
		{
			Slug:                     "rose-glow-serum",
			Name:                     "Rose Glow Facial Serum",
			Brand:                    "HusnCart",
			Description:              "Hydrating facial serum with rose extract, 30ml.",
			AffiliateEnabled:         true,
			AffiliateDiscountType:    constants.AffiliateDiscountTypePercent,
			AffiliateDiscountValue:   money("5"),
			AffiliateCommissionType:  constants.AffiliateCommissionTypePercent,
			AffiliateCommissionValue: money("10"),
			IsActive:                 true,
			Variants: []models.Variant{
				{SKU: "RGS-30", Price: money("2400"), IsActive: true},
			},
		},
		{
			Slug:                     "kajal-classic",
			Name:                     "Classic Kajal Pencil",
			Brand:                    "HusnCart",
			Description:              "Long-wear smudge-proof kajal.",
			AffiliateEnabled:         true,
			AffiliateDiscountType:    "none",
			AffiliateCommissionType:  constants.AffiliateCommissionTypeFixed,
			AffiliateCommissionValue: money("60"),
			IsActive:                 true,
			Variants: []models.Variant{
				{SKU: "KJL-BLK", Attrs: models.JSON{"shade": "black"}, Price: money("450"), IsActive: true},
				{SKU: "KJL-BRN", Attrs: models.JSON{"shade": "brown"}, Price: money("450"), IsActive: true},
			},
		},
		{
			Slug:        "argan-hair-oil",
			Name:        "Argan Hair Oil",
			Brand:       "HusnCart",
			Description: "Cold-pressed argan oil for hair repair, 100ml.",
			IsActive:    true,
			Variants: []models.Variant{
				{SKU: "AHO-100", Price: money("1350"), IsActive: true},
			},
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err == nil {
			logf("Product already exists: %s", product.Slug)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			logf("Failed to create product %s: %v", product.Slug, err)
			continue
		}
		logf("Created product: %s", product.Slug)
	}
}

func seedAffiliates(logf printf) {
	affiliates := []models.Affiliate{
		{Name: "Ayesha K.", Phone: "03001234567", City: "Lahore", RefCode: "AYESHA1", Active: true, Status: constants.AffiliateStatusActive},
	}
	for _, affiliate := range affiliates {
		var existing models.Affiliate
		if err := models.DB.Where("ref_code = ?", affiliate.RefCode).First(&existing).Error; err == nil {
			logf("Affiliate already exists: %s", affiliate.RefCode)
			continue
		}
		if err := models.DB.Create(&affiliate).Error; err != nil {
			logf("Failed to create affiliate %s: %v", affiliate.RefCode, err)
			continue
		}
		logf("Created affiliate: %s", affiliate.RefCode)
	}
}

func money(value string) models.Money {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return models.Money{}
	}
	return models.NewMoneyFromDecimal(amount)
}
