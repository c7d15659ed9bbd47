package service

import (
	"strings"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"
)

// ProductService manages the catalog: products and their variants.
type ProductService struct {
	repo        repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository, variantRepo repository.VariantRepository) *ProductService {
	return &ProductService{repo: repo, variantRepo: variantRepo}
}

// ProductInput carries the admin create/update payload.
type ProductInput struct {
	Slug                     string
	Name                     string
	Brand                    string
	Description              string
	Images                   []string
	AffiliateEnabled         bool
	AffiliateDiscountType    string
	AffiliateDiscountValue   models.Money
	AffiliateCommissionType  string
	AffiliateCommissionValue models.Money
	IsActive                 bool
	SortOrder                int
}

// VariantInput carries the admin variant payload.
type VariantInput struct {
	SKU       string
	Attrs     map[string]interface{}
	Price     models.Money
	IsActive  bool
	SortOrder int
}

// ListPublic returns active products for the storefront.
func (s *ProductService) ListPublic(brand, search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Brand:        strings.TrimSpace(brand),
		Search:       strings.TrimSpace(search),
		OnlyActive:   true,
		WithVariants: true,
	})
}

// GetPublicBySlug returns one active product with its variants.
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin returns products for the admin console.
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.WithVariants = true
	return s.repo.List(filter)
}

// GetByID returns one product with variants.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrProductInvalid
	}
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	product := &models.Product{
		Slug:                     slug,
		Name:                     name,
		Brand:                    strings.TrimSpace(input.Brand),
		Description:              input.Description,
		Images:                   models.StringArray(input.Images),
		AffiliateEnabled:         input.AffiliateEnabled,
		AffiliateDiscountType:    normalizeDiscountType(input.AffiliateDiscountType),
		AffiliateDiscountValue:   input.AffiliateDiscountValue,
		AffiliateCommissionType:  normalizeCommissionType(input.AffiliateCommissionType),
		AffiliateCommissionValue: input.AffiliateCommissionValue,
		IsActive:                 input.IsActive,
		SortOrder:                input.SortOrder,
	}
	if err := s.repo.Create(product); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return product, nil
}

// Update edits a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrProductInvalid
	}
	if slug != product.Slug {
		existing, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, ErrSlugTaken
		}
	}

	product.Slug = slug
	product.Name = name
	product.Brand = strings.TrimSpace(input.Brand)
	product.Description = input.Description
	product.Images = models.StringArray(input.Images)
	product.AffiliateEnabled = input.AffiliateEnabled
	product.AffiliateDiscountType = normalizeDiscountType(input.AffiliateDiscountType)
	product.AffiliateDiscountValue = input.AffiliateDiscountValue
	product.AffiliateCommissionType = normalizeCommissionType(input.AffiliateCommissionType)
	product.AffiliateCommissionValue = input.AffiliateCommissionValue
	product.IsActive = input.IsActive
	product.SortOrder = input.SortOrder
	if err := s.repo.Update(product); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ListVariants returns all variants of a product.
func (s *ProductService) ListVariants(productID uint) ([]models.Variant, error) {
	if _, err := s.GetByID(productID); err != nil {
		return nil, err
	}
	return s.variantRepo.ListByProduct(productID)
}

// CreateVariant adds a variant under a product.
func (s *ProductService) CreateVariant(productID uint, input VariantInput) (*models.Variant, error) {
	if _, err := s.GetByID(productID); err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" || input.Price.Decimal.IsNegative() {
		return nil, ErrVariantInvalid
	}
	variant := &models.Variant{
		ProductID: productID,
		SKU:       sku,
		Attrs:     models.JSON(input.Attrs),
		Price:     input.Price,
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}
	if err := s.variantRepo.Create(variant); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrVariantSKUTaken
		}
		return nil, err
	}
	return variant, nil
}

// UpdateVariant edits a variant.
func (s *ProductService) UpdateVariant(id uint, input VariantInput) (*models.Variant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" || input.Price.Decimal.IsNegative() {
		return nil, ErrVariantInvalid
	}
	variant.SKU = sku
	variant.Attrs = models.JSON(input.Attrs)
	variant.Price = input.Price
	variant.IsActive = input.IsActive
	variant.SortOrder = input.SortOrder
	if err := s.variantRepo.Update(variant); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrVariantSKUTaken
		}
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a variant.
func (s *ProductService) DeleteVariant(id uint) error {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if variant == nil {
		return ErrVariantNotFound
	}
	return s.variantRepo.Delete(id)
}

func normalizeDiscountType(raw string) string {
	switch strings.TrimSpace(raw) {
	case constants.AffiliateDiscountTypePercent:
		return constants.AffiliateDiscountTypePercent
	case constants.AffiliateDiscountTypeFixed:
		return constants.AffiliateDiscountTypeFixed
	default:
		return constants.AffiliateDiscountTypeNone
	}
}

func normalizeCommissionType(raw string) string {
	switch strings.TrimSpace(raw) {
	case constants.AffiliateCommissionTypeFixed:
		return constants.AffiliateCommissionTypeFixed
	default:
		return constants.AffiliateCommissionTypePercent
	}
}
