package models

import (
	"time"

	"gorm.io/gorm"
)

// ParlourPricingTier is a per-product wholesale price band. A tier fixes
// either a flat unit price or a percent discount off retail; the row with
// the highest min_qty satisfied by the quoted quantity wins.
type ParlourPricingTier struct {
	ID              uint           `gorm:"primarykey" json:"id"`                            // primary key
	ProductID       uint           `gorm:"not null;index" json:"product_id"`                // product the band applies to
	MinQty          int            `gorm:"not null;default:0;index" json:"min_qty"`         // band lower bound
	UnitPrice       *Money         `gorm:"type:decimal(20,2)" json:"unit_price,omitempty"`  // flat wholesale unit price
	DiscountPercent *Money         `gorm:"type:decimal(10,2)" json:"discount_percent,omitempty"` // percent off retail, used when unit_price is null
	Active          bool           `gorm:"not null;default:true;index" json:"active"`       // included in resolution
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                         // created time
	UpdatedAt       time.Time      `json:"updated_at"`                                      // updated time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                  // soft delete

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // owning product
}

// TableName sets the table name.
func (ParlourPricingTier) TableName() string {
	return "parlour_pricing_tiers"
}
