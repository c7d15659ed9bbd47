package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/husncart/husncart/internal/cache"
	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"
)

const settingCacheTTL = 5 * time.Minute

// SettingService stores admin-tunable configuration as JSON rows.
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService creates the setting service.
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// AffiliateConfig is the runtime affiliate-program configuration.
type AffiliateConfig struct {
	Enabled  bool `json:"enabled"`
	HoldDays int  `json:"hold_days"`
}

// AdsConfig is the runtime ad-conversion reporting configuration.
type AdsConfig struct {
	Enabled  bool   `json:"enabled"`
	PixelURL string `json:"pixel_url"`
	Token    string `json:"token"`
}

// GetByKey returns a raw setting value, nil when unset.
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return setting.ValueJSON, nil
}

// Update overwrites a setting value and drops its cache entry.
func (s *SettingService) Update(key string, value map[string]interface{}) (models.JSON, error) {
	setting, err := s.repo.Upsert(key, models.JSON(value))
	if err != nil {
		return nil, err
	}
	if cache.Enabled() {
		if err := cache.Del(context.Background(), settingCacheKey(key)); err != nil {
			logger.Warnw("setting_cache_invalidate_failed", "key", key, "error", err)
		}
	}
	return setting.ValueJSON, nil
}

// GetAffiliateConfig loads the affiliate-program config with defaults
// applied for missing fields.
func (s *SettingService) GetAffiliateConfig(defaultHoldDays int) (AffiliateConfig, error) {
	cfg := AffiliateConfig{Enabled: true, HoldDays: defaultHoldDays}
	if err := s.loadConfig(constants.SettingKeyAffiliateConfig, &cfg); err != nil {
		return cfg, err
	}
	if cfg.HoldDays < 0 {
		cfg.HoldDays = defaultHoldDays
	}
	return cfg, nil
}

// GetAdsConfig loads the ad-conversion config. Disabled when unset.
func (s *SettingService) GetAdsConfig() (AdsConfig, error) {
	var cfg AdsConfig
	if err := s.loadConfig(constants.SettingKeyAdsConfig, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadConfig fills dest from cache or the settings table. Missing rows
// leave dest at its defaults.
func (s *SettingService) loadConfig(key string, dest interface{}) error {
	ctx := context.Background()
	cacheKey := settingCacheKey(key)
	if cache.Enabled() {
		if hit, err := cache.GetJSON(ctx, cacheKey, dest); err != nil {
			logger.Warnw("setting_cache_read_failed", "key", key, "error", err)
		} else if hit {
			return nil
		}
	}

	value, err := s.GetByKey(key)
	if err != nil {
		return err
	}
	if value != nil {
		raw, marshalErr := json.Marshal(value)
		if marshalErr != nil {
			return marshalErr
		}
		if err := json.Unmarshal(raw, dest); err != nil {
			return err
		}
	}

	if cache.Enabled() {
		if err := cache.SetJSON(ctx, cacheKey, dest, settingCacheTTL); err != nil {
			logger.Warnw("setting_cache_write_failed", "key", key, "error", err)
		}
	}
	return nil
}

func settingCacheKey(key string) string {
	return fmt.Sprintf("setting:%s", key)
}
