package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is the order header. The affiliate_* columns form an immutable
// snapshot written at creation time: they record exactly what was promised
// at checkout and are never recomputed from current product or tier state.
type Order struct {
	ID      uint   `gorm:"primarykey" json:"id"`                 // primary key
	OrderNo string `gorm:"uniqueIndex;not null" json:"order_no"` // order number
	Status  string `gorm:"index;not null" json:"status"`         // order status

	// Customer fields (cash-on-delivery checkout, no account required).
	CustomerName  string `gorm:"type:varchar(120);not null" json:"customer_name"`   // recipient name
	CustomerPhone string `gorm:"type:varchar(32);not null;index" json:"customer_phone"` // recipient phone
	CustomerEmail string `gorm:"type:varchar(190)" json:"customer_email,omitempty"` // optional email for receipt
	Address       string `gorm:"type:varchar(500);not null" json:"address"`         // street address
	City          string `gorm:"type:varchar(64);not null" json:"city"`             // city
	ProvinceCode  string `gorm:"type:varchar(8)" json:"province_code,omitempty"`    // optional province code

	Currency       string `gorm:"not null" json:"currency"`                                   // currency code
	ItemCount      int    `gorm:"not null;default:0" json:"item_count"`                       // total units across lines
	TotalAmount    Money  `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // items subtotal after discount
	ShippingAmount Money  `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_amount"` // resolved shipping charge
	GrandTotal     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"grand_total"`   // total_amount + shipping

	// Affiliate snapshot. All zero/null when no affiliate resolved.
	AffiliateID                      *uint  `gorm:"index" json:"affiliate_id,omitempty"`                                            // resolved affiliate, nullable
	AffiliateRefCode                 string `gorm:"type:varchar(32)" json:"affiliate_ref_code,omitempty"`                           // code as resolved
	AffiliateCommissionAmount        Money  `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_commission_amount"`       // final commission, post-tier
	AffiliateBaseCommission          Money  `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_base_commission"`         // commission before tier multiplier
	AffiliateTierID                  *uint  `json:"affiliate_tier_id,omitempty"`                                                    // tier applied, nullable
	AffiliateTierName                string `gorm:"type:varchar(64)" json:"affiliate_tier_name,omitempty"`                          // tier label at checkout
	AffiliateTierMultiplier          Money  `gorm:"type:decimal(10,2);not null;default:100" json:"affiliate_tier_multiplier"`       // multiplier percent applied
	AffiliateCommissionRule          string `gorm:"type:varchar(255)" json:"affiliate_commission_rule,omitempty"`                   // human-readable audit string
	AffiliateCommissionTypeSnapshot  string `gorm:"type:varchar(16)" json:"affiliate_commission_type_snapshot,omitempty"`           // product commission type used
	AffiliateCommissionValueSnapshot Money  `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_commission_value_snapshot"` // product commission value used
	AffiliateBasePriceSnapshot       Money  `gorm:"type:decimal(20,2);not null;default:0" json:"affiliate_base_price_snapshot"`     // base price percent commission applied to

	ClientIP    string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"` // submitting client IP
	DeliveredAt *time.Time     `gorm:"index" json:"delivered_at,omitempty"`         // delivery confirmation time
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at,omitempty"`          // cancellation time
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                     // created time
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                     // updated time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                              // soft delete

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // order lines
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
