package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingRule maps a minimum order quantity to a shipping charge. The
// rule with the highest min_qty satisfied by the order's total quantity
// wins; no matching rule means free shipping.
type ShippingRule struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                // primary key
	MinQty    int            `gorm:"not null;default:0;index" json:"min_qty"`             // band lower bound
	Amount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // shipping charge
	Active    bool           `gorm:"not null;default:true;index" json:"active"`           // included in resolution
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                             // created time
	UpdatedAt time.Time      `json:"updated_at"`                                          // updated time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // soft delete
}

// TableName sets the table name.
func (ShippingRule) TableName() string {
	return "shipping_rules"
}
