package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateCommission is a ledger row tracking one order's commission
// through its payout lifecycle: pending -> payable -> paid, or void
// (terminal, reachable from any non-paid state). Paid is non-reversible.
type AffiliateCommission struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                                           // primary key
	AffiliateID       uint           `gorm:"not null;index;index:idx_commission_order_affiliate,unique" json:"affiliate_id"` // earning affiliate
	OrderID           uint           `gorm:"not null;index;index:idx_commission_order_affiliate,unique" json:"order_id"`     // source order
	BaseAmount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"base_amount"`                       // commission before tier multiplier
	MultiplierPercent Money          `gorm:"type:decimal(10,2);not null;default:100" json:"multiplier_percent"`              // tier multiplier applied
	Amount            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`                            // final commission amount
	Status            string         `gorm:"type:varchar(16);not null;index" json:"status"`                                  // pending/payable/paid/void
	PayableAt         *time.Time     `gorm:"index" json:"payable_at,omitempty"`                                              // end of hold period
	PaidAt            *time.Time     `gorm:"index" json:"paid_at,omitempty"`                                                 // disbursement time
	VoidReason        string         `gorm:"type:varchar(255)" json:"void_reason,omitempty"`                                 // why the row was voided
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                                        // created time
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                                        // updated time
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                                                 // soft delete

	Affiliate Affiliate `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"` // earning affiliate
	Order     Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`         // source order
}

// TableName sets the table name.
func (AffiliateCommission) TableName() string {
	return "affiliate_commissions"
}
