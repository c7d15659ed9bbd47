package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/husncart/husncart/internal/config"
	"github.com/husncart/husncart/internal/logger"
)

const adsDefaultTimeout = 2 * time.Second

// AdsService reports order conversions to the configured ad pixel.
// Reporting is best effort: a failed or disabled pixel never affects
// the order.
type AdsService struct {
	cfg            *config.AdsConfig
	settingService *SettingService
	client         *http.Client
}

// NewAdsService creates the ads service.
func NewAdsService(cfg *config.AdsConfig, settingService *SettingService) *AdsService {
	timeout := adsDefaultTimeout
	if cfg != nil && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &AdsService{
		cfg:            cfg,
		settingService: settingService,
		client:         &http.Client{Timeout: timeout},
	}
}

// AdConversionInput is one conversion event.
type AdConversionInput struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	Amount  string `json:"amount"`
}

// ReportConversion posts the conversion event to the pixel endpoint.
// Returns nil without sending when reporting is disabled.
func (s *AdsService) ReportConversion(ctx context.Context, input AdConversionInput) error {
	cfg := s.effectiveConfig()
	if !cfg.Enabled || strings.TrimSpace(cfg.PixelURL) == "" {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":    "purchase",
		"order_no": input.OrderNo,
		"value":    input.Amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.PixelURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := strings.TrimSpace(cfg.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ad pixel responded %d", resp.StatusCode)
	}
	logger.Infow("ad_conversion_reported", "order_no", input.OrderNo)
	return nil
}

// effectiveConfig overlays the stored setting on the static config so
// the pixel can be toggled at runtime from the admin console.
func (s *AdsService) effectiveConfig() AdsConfig {
	cfg := AdsConfig{}
	if s.cfg != nil {
		cfg.Enabled = s.cfg.Enabled
		cfg.PixelURL = s.cfg.PixelURL
		cfg.Token = s.cfg.Token
	}
	if s.settingService == nil {
		return cfg
	}
	stored, err := s.settingService.GetAdsConfig()
	if err != nil {
		logger.Warnw("ads_config_load_failed", "error", err)
		return cfg
	}
	if stored.Enabled {
		cfg.Enabled = true
		if strings.TrimSpace(stored.PixelURL) != "" {
			cfg.PixelURL = stored.PixelURL
		}
		if strings.TrimSpace(stored.Token) != "" {
			cfg.Token = stored.Token
		}
	}
	return cfg
}
