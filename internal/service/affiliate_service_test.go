package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupAffiliateServiceTest(t *testing.T) (*AffiliateService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Affiliate{}, &models.AffiliateClick{}, &models.AffiliateCommission{})
	return NewAffiliateService(repository.NewAffiliateRepository(db), repository.NewCommissionRepository(db)), db
}

func TestResolveReferralNormalizesCode(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "AYESHA1")

	resolved := svc.ResolveReferral("  ayesha1 ")
	if resolved == nil || resolved.ID != affiliate.ID {
		t.Fatalf("expected affiliate %d, got %+v", affiliate.ID, resolved)
	}
}

func TestResolveReferralUnknownCode(t *testing.T) {
	svc, _ := setupAffiliateServiceTest(t)

	if resolved := svc.ResolveReferral("NOSUCH1"); resolved != nil {
		t.Fatalf("expected nil for unknown code, got %+v", resolved)
	}
}

func TestResolveReferralBlankCode(t *testing.T) {
	svc, _ := setupAffiliateServiceTest(t)

	if resolved := svc.ResolveReferral("   "); resolved != nil {
		t.Fatalf("expected nil for blank code, got %+v", resolved)
	}
}

func TestResolveReferralIneligibleAffiliate(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	suspended := createTestAffiliate(t, db, "SUSP001")
	if err := db.Model(&models.Affiliate{}).Where("id = ?", suspended.ID).
		Update("status", constants.AffiliateStatusSuspended).Error; err != nil {
		t.Fatalf("suspend affiliate failed: %v", err)
	}
	if resolved := svc.ResolveReferral("SUSP001"); resolved != nil {
		t.Fatalf("expected nil for suspended affiliate, got %+v", resolved)
	}

	inactive := createTestAffiliate(t, db, "INAC001")
	if err := db.Model(&models.Affiliate{}).Where("id = ?", inactive.ID).
		Update("active", false).Error; err != nil {
		t.Fatalf("deactivate affiliate failed: %v", err)
	}
	if resolved := svc.ResolveReferral("INAC001"); resolved != nil {
		t.Fatalf("expected nil for inactive affiliate, got %+v", resolved)
	}

	// warning accounts still earn
	warned := createTestAffiliate(t, db, "WARN001")
	if err := db.Model(&models.Affiliate{}).Where("id = ?", warned.ID).
		Update("status", constants.AffiliateStatusWarning).Error; err != nil {
		t.Fatalf("warn affiliate failed: %v", err)
	}
	if resolved := svc.ResolveReferral("WARN001"); resolved == nil {
		t.Fatal("expected warning affiliate to stay eligible")
	}
}

func TestAffiliateCreateGeneratesCode(t *testing.T) {
	svc, _ := setupAffiliateServiceTest(t)

	affiliate, err := svc.Create(AffiliateCreateInput{Name: "Ayesha K.", City: "Lahore"})
	if err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	if len(affiliate.RefCode) != affiliateCodeLength {
		t.Fatalf("expected %d-char code, got %q", affiliateCodeLength, affiliate.RefCode)
	}
	if affiliate.Status != constants.AffiliateStatusActive || !affiliate.Active {
		t.Fatalf("expected active account, got status=%q active=%v", affiliate.Status, affiliate.Active)
	}
}

func TestAffiliateCreateExplicitCode(t *testing.T) {
	svc, _ := setupAffiliateServiceTest(t)

	affiliate, err := svc.Create(AffiliateCreateInput{Name: "Sana", RefCode: " sana23 "})
	if err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	if affiliate.RefCode != "SANA23" {
		t.Fatalf("expected uppercased code SANA23, got %q", affiliate.RefCode)
	}

	if _, err := svc.Create(AffiliateCreateInput{Name: "Other", RefCode: "sana23"}); !errors.Is(err, ErrAffiliateCodeTaken) {
		t.Fatalf("expected ErrAffiliateCodeTaken, got %v", err)
	}
}

func TestAffiliateCreateRequiresName(t *testing.T) {
	svc, _ := setupAffiliateServiceTest(t)

	if _, err := svc.Create(AffiliateCreateInput{Name: "   "}); !errors.Is(err, ErrAffiliateInvalid) {
		t.Fatalf("expected ErrAffiliateInvalid, got %v", err)
	}
}

func TestAddStrikeMovesStatusThroughBands(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "STRIKE1")

	first, err := svc.AddStrike(affiliate.ID, "late handover")
	if err != nil {
		t.Fatalf("first strike failed: %v", err)
	}
	if first.StrikeCount != 1 || first.Status != constants.AffiliateStatusActive {
		t.Fatalf("after 1 strike expected active, got count=%d status=%q", first.StrikeCount, first.Status)
	}

	second, err := svc.AddStrike(affiliate.ID, "")
	if err != nil {
		t.Fatalf("second strike failed: %v", err)
	}
	if second.StrikeCount != 2 || second.Status != constants.AffiliateStatusWarning {
		t.Fatalf("after 2 strikes expected warning, got count=%d status=%q", second.StrikeCount, second.Status)
	}

	svc.AddStrike(affiliate.ID, "")
	fourth, err := svc.AddStrike(affiliate.ID, "chargeback abuse")
	if err != nil {
		t.Fatalf("fourth strike failed: %v", err)
	}
	if fourth.StrikeCount != 4 || fourth.Status != constants.AffiliateStatusSuspended {
		t.Fatalf("after 4 strikes expected suspended, got count=%d status=%q", fourth.StrikeCount, fourth.Status)
	}
}

func TestAddStrikeKeepsRevokedStatus(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "REVOKE1")
	if err := db.Model(&models.Affiliate{}).Where("id = ?", affiliate.ID).
		Update("status", constants.AffiliateStatusRevoked).Error; err != nil {
		t.Fatalf("revoke affiliate failed: %v", err)
	}

	struck, err := svc.AddStrike(affiliate.ID, "")
	if err != nil {
		t.Fatalf("strike failed: %v", err)
	}
	if struck.Status != constants.AffiliateStatusRevoked {
		t.Fatalf("expected revoked to stay revoked, got %q", struck.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "STATUS1")
	if _, err := svc.UpdateStatus(affiliate.ID, "banned", true); !errors.Is(err, ErrAffiliateStatusInvalid) {
		t.Fatalf("expected ErrAffiliateStatusInvalid, got %v", err)
	}

	updated, err := svc.UpdateStatus(affiliate.ID, constants.AffiliateStatusRevoked, false)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.AffiliateStatusRevoked || updated.Active {
		t.Fatalf("expected revoked inactive, got %+v", updated)
	}
}

func TestTrackClickRecordsVisit(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "CLICK001")

	resolved := svc.TrackClick(AffiliateTrackClickInput{
		Code:        "click001",
		LandingPath: "/r/CLICK001",
		ClientIP:    "1.2.3.4",
	})
	if resolved == nil || resolved.ID != affiliate.ID {
		t.Fatalf("expected affiliate %d, got %+v", affiliate.ID, resolved)
	}

	var count int64
	if err := db.Model(&models.AffiliateClick{}).Where("affiliate_id = ?", affiliate.ID).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 click recorded, got %d", count)
	}
}

func TestTrackClickIgnoresUnknownCode(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	if resolved := svc.TrackClick(AffiliateTrackClickInput{Code: "GHOST01"}); resolved != nil {
		t.Fatalf("expected nil for unknown code, got %+v", resolved)
	}
	var count int64
	if err := db.Model(&models.AffiliateClick{}).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no click rows, got %d", count)
	}
}

func TestAffiliateSummaryAggregatesLedger(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	affiliate := createTestAffiliate(t, db, "SUMMARY1")
	rows := []models.AffiliateCommission{
		{AffiliateID: affiliate.ID, OrderID: 1, Amount: testMoney(t, "240"), Status: constants.CommissionStatusPending},
		{AffiliateID: affiliate.ID, OrderID: 2, Amount: testMoney(t, "60"), Status: constants.CommissionStatusPayable},
		{AffiliateID: affiliate.ID, OrderID: 3, Amount: testMoney(t, "135"), Status: constants.CommissionStatusPaid},
		{AffiliateID: affiliate.ID, OrderID: 4, Amount: testMoney(t, "500"), Status: constants.CommissionStatusVoid},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create commission failed: %v", err)
		}
	}

	summary, err := svc.Summary(affiliate.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !summary.PendingTotal.Equal(mustDecimal(t, "240")) {
		t.Fatalf("expected pending 240, got %s", summary.PendingTotal)
	}
	if !summary.PayableTotal.Equal(mustDecimal(t, "60")) {
		t.Fatalf("expected payable 60, got %s", summary.PayableTotal)
	}
	if !summary.PaidTotal.Equal(mustDecimal(t, "135")) {
		t.Fatalf("expected paid 135, got %s", summary.PaidTotal)
	}
}
