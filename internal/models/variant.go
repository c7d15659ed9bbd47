package models

import (
	"time"

	"gorm.io/gorm"
)

// Variant is a sellable unit of a product (shade, size). Price is the
// retail unit price before any affiliate discount.
type Variant struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                               // primary key
	ProductID uint           `gorm:"not null;index;uniqueIndex:idx_variant_sku" json:"product_id"`       // owning product
	SKU       string         `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:idx_variant_sku" json:"sku"` // SKU code, unique per product
	Attrs     JSON           `gorm:"type:json" json:"attrs"`                                             // attribute values (shade, size)
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                 // retail unit price
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`                                // sellable
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`                                  // display weight
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                            // created time
	UpdatedAt time.Time      `json:"updated_at"`                                                         // updated time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                     // soft delete

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // owning product
}

// TableName sets the table name.
func (Variant) TableName() string {
	return "variants"
}
