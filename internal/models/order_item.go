package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is an order line. UnitPrice is the effective (discounted)
// price, not the variant's current retail price, so historical totals stay
// correct when variant pricing changes later.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID      uint           `gorm:"index;not null" json:"order_id"`                           // owning order
	ProductID    uint           `gorm:"index;not null" json:"product_id"`                         // product snapshot reference
	VariantID    uint           `gorm:"index;not null" json:"variant_id"`                         // variant purchased
	NameSnapshot string         `gorm:"type:varchar(255);not null" json:"name"`                   // product name at checkout
	SKUSnapshot  string         `gorm:"column:sku_snapshot;type:varchar(64)" json:"sku"`          // variant SKU at checkout
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // discounted unit price
	Quantity     int            `gorm:"not null" json:"quantity"`                                 // units ordered
	LineTotal    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`  // unit_price * quantity
	ReturnedQty  int            `gorm:"not null;default:0" json:"returned_qty"`                   // units returned
	ReturnStatus string         `gorm:"type:varchar(16);not null;default:'none'" json:"return_status"` // none/partial/returned
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                  // created time
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                  // updated time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                           // soft delete
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
