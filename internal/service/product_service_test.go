package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Product{}, &models.Variant{})
	return NewProductService(repository.NewProductRepository(db), repository.NewVariantRepository(db)), db
}

func TestProductCreateNormalizesSlugAndTypes(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.Create(ProductInput{
		Slug:                    "  Rose-Glow-Serum ",
		Name:                    "Rose Glow Serum",
		Brand:                   "HusnCart",
		AffiliateDiscountType:   "bogus",
		AffiliateCommissionType: "bogus",
		IsActive:                true,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Slug != "rose-glow-serum" {
		t.Fatalf("expected lowered slug, got %q", product.Slug)
	}
	if product.AffiliateDiscountType != constants.AffiliateDiscountTypeNone {
		t.Fatalf("expected discount type none, got %q", product.AffiliateDiscountType)
	}
	if product.AffiliateCommissionType != constants.AffiliateCommissionTypePercent {
		t.Fatalf("expected commission type percent, got %q", product.AffiliateCommissionType)
	}
}

func TestProductCreateSlugTaken(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Slug: "kajal", Name: "Kajal", IsActive: true}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := svc.Create(ProductInput{Slug: "KAJAL", Name: "Other Kajal"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Slug: "", Name: "No Slug"}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid, got %v", err)
	}
	if _, err := svc.Create(ProductInput{Slug: "no-name", Name: "  "}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid, got %v", err)
	}
}

func TestGetPublicBySlugHidesInactive(t *testing.T) {
	svc, db := setupProductServiceTest(t)

	createTestProduct(t, db, "visible", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	hidden := createTestProduct(t, db, "hidden", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	if err := db.Model(&models.Product{}).Where("id = ?", hidden.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	if _, err := svc.GetPublicBySlug("visible"); err != nil {
		t.Fatalf("expected active product visible, got %v", err)
	}
	if _, err := svc.GetPublicBySlug("hidden"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for inactive product, got %v", err)
	}
	if _, err := svc.GetPublicBySlug("missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for unknown slug, got %v", err)
	}
}

func TestVariantSKUUniquePerProduct(t *testing.T) {
	svc, db := setupProductServiceTest(t)

	black := createTestProduct(t, db, "kajal-black", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	brown := createTestProduct(t, db, "kajal-brown", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")

	if _, err := svc.CreateVariant(black.ID, VariantInput{SKU: "KJL-1", Price: testMoney(t, "450"), IsActive: true}); err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	if _, err := svc.CreateVariant(black.ID, VariantInput{SKU: "KJL-1", Price: testMoney(t, "450")}); !errors.Is(err, ErrVariantSKUTaken) {
		t.Fatalf("expected ErrVariantSKUTaken, got %v", err)
	}
	// same SKU under a different product is fine
	if _, err := svc.CreateVariant(brown.ID, VariantInput{SKU: "KJL-1", Price: testMoney(t, "450"), IsActive: true}); err != nil {
		t.Fatalf("expected SKU reuse across products, got %v", err)
	}
}

func TestVariantCreateValidation(t *testing.T) {
	svc, db := setupProductServiceTest(t)

	product := createTestProduct(t, db, "variant-validate", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")

	if _, err := svc.CreateVariant(product.ID, VariantInput{SKU: "  ", Price: testMoney(t, "100")}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected ErrVariantInvalid for blank SKU, got %v", err)
	}
	if _, err := svc.CreateVariant(product.ID, VariantInput{SKU: "VV-1", Price: testMoney(t, "-1")}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected ErrVariantInvalid for negative price, got %v", err)
	}
	if _, err := svc.CreateVariant(999, VariantInput{SKU: "VV-1", Price: testMoney(t, "100")}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteVariant(t *testing.T) {
	svc, db := setupProductServiceTest(t)

	product := createTestProduct(t, db, "variant-delete", false,
		constants.AffiliateDiscountTypeNone, "0",
		constants.AffiliateCommissionTypePercent, "0")
	variant := createTestVariant(t, db, product.ID, "VD-1", "100")

	if err := svc.DeleteVariant(variant.ID); err != nil {
		t.Fatalf("delete variant failed: %v", err)
	}
	if err := svc.DeleteVariant(variant.ID); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
}
