package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/husncart/husncart/internal/config"
	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
)

func TestReportConversionDisabledIsNoop(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewAdsService(&config.AdsConfig{Enabled: false, PixelURL: server.URL}, nil)
	if err := svc.ReportConversion(context.Background(), AdConversionInput{OrderNo: "HC1"}); err != nil {
		t.Fatalf("expected nil when disabled, got %v", err)
	}
	if called {
		t.Fatal("expected no pixel call when disabled")
	}
}

func TestReportConversionPostsEvent(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewAdsService(&config.AdsConfig{Enabled: true, PixelURL: server.URL, Token: "tok123"}, nil)
	err := svc.ReportConversion(context.Background(), AdConversionInput{
		OrderID: 1,
		OrderNo: "HC20260101000000123456",
		Amount:  "4810.00",
	})
	if err != nil {
		t.Fatalf("report conversion failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotBody["event"] != "purchase" || gotBody["order_no"] != "HC20260101000000123456" {
		t.Fatalf("unexpected payload %v", gotBody)
	}
}

func TestReportConversionNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewAdsService(&config.AdsConfig{Enabled: true, PixelURL: server.URL}, nil)
	if err := svc.ReportConversion(context.Background(), AdConversionInput{OrderNo: "HC2"}); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestReportConversionStoredSettingOverridesStatic(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	settingSvc, db := setupSettingServiceTest(t)
	setting := &models.Setting{
		Key:       constants.SettingKeyAdsConfig,
		ValueJSON: models.JSON{"enabled": true, "pixel_url": server.URL},
	}
	if err := db.Create(setting).Error; err != nil {
		t.Fatalf("create setting failed: %v", err)
	}

	// static config disabled, runtime setting turns reporting on
	svc := NewAdsService(&config.AdsConfig{Enabled: false}, settingSvc)
	if err := svc.ReportConversion(context.Background(), AdConversionInput{OrderNo: "HC3"}); err != nil {
		t.Fatalf("report conversion failed: %v", err)
	}
	if !called {
		t.Fatal("expected pixel call via stored setting")
	}
}
