package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. The affiliate_* fields are the per-product
// affiliate program configuration; changes apply only to orders placed
// after the change (orders carry their own snapshot).
type Product struct {
	ID                       uint           `gorm:"primarykey" json:"id"`                                                      // primary key
	Slug                     string         `gorm:"uniqueIndex;not null" json:"slug"`                                          // unique handle
	Name                     string         `gorm:"type:varchar(190);not null" json:"name"`                                    // product name
	Brand                    string         `gorm:"type:varchar(120);index" json:"brand,omitempty"`                            // brand label
	Description              string         `gorm:"type:text" json:"description,omitempty"`                                    // long description
	Images                   StringArray    `gorm:"type:json" json:"images"`                                                   // image paths
	AffiliateEnabled         bool           `gorm:"not null;default:false;index" json:"affiliate_enabled"`                     // product participates in affiliate program
	AffiliateDiscountType    string         `gorm:"type:varchar(16);not null;default:'none'" json:"affiliate_discount_type"`   // none/percent/fixed
	AffiliateDiscountValue   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_discount_value"`     // customer discount per unit
	AffiliateCommissionType  string         `gorm:"type:varchar(16);not null;default:'percent'" json:"affiliate_commission_type"` // percent/fixed
	AffiliateCommissionValue Money          `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_commission_value"`   // commission per unit before tier
	IsActive                 bool           `gorm:"default:true;index" json:"is_active"`                                       // listed on storefront
	SortOrder                int            `gorm:"default:0;index" json:"sort_order"`                                         // display weight
	CreatedAt                time.Time      `gorm:"index" json:"created_at"`                                                   // created time
	UpdatedAt                time.Time      `json:"updated_at"`                                                                // updated time
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`                                                            // soft delete

	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"` // sellable variants
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
