package service

import (
	"testing"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupSettingServiceTest(t *testing.T) (*SettingService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Setting{})
	return NewSettingService(repository.NewSettingRepository(db)), db
}

func TestGetAffiliateConfigDefaults(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	cfg, err := svc.GetAffiliateConfig(7)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if !cfg.Enabled {
		t.Fatal("expected affiliate program enabled by default")
	}
	if cfg.HoldDays != 7 {
		t.Fatalf("expected default hold days 7, got %d", cfg.HoldDays)
	}
}

func TestAffiliateConfigRoundTrip(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if _, err := svc.Update(constants.SettingKeyAffiliateConfig, map[string]interface{}{
		"enabled":   false,
		"hold_days": 14,
	}); err != nil {
		t.Fatalf("update config failed: %v", err)
	}

	cfg, err := svc.GetAffiliateConfig(7)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Enabled {
		t.Fatal("expected affiliate program disabled after update")
	}
	if cfg.HoldDays != 14 {
		t.Fatalf("expected hold days 14, got %d", cfg.HoldDays)
	}
}

func TestAffiliateConfigNegativeHoldDaysFallsBack(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if _, err := svc.Update(constants.SettingKeyAffiliateConfig, map[string]interface{}{
		"enabled":   true,
		"hold_days": -3,
	}); err != nil {
		t.Fatalf("update config failed: %v", err)
	}

	cfg, err := svc.GetAffiliateConfig(7)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.HoldDays != 7 {
		t.Fatalf("expected fallback hold days 7, got %d", cfg.HoldDays)
	}
}

func TestGetAdsConfigDisabledWhenUnset(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	cfg, err := svc.GetAdsConfig()
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Enabled {
		t.Fatal("expected ads reporting disabled by default")
	}
}

func TestGetByKeyUnsetReturnsNil(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	value, err := svc.GetByKey("nonexistent")
	if err != nil {
		t.Fatalf("get by key failed: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil value, got %v", value)
	}
}
