package models

import (
	"time"

	"gorm.io/gorm"
)

// CommissionTier is a multiplier band keyed by the affiliate's trailing
// 30-day delivered-order count. Exactly one active tier should carry a
// threshold of 0 (the default tier).
type CommissionTier struct {
	ID                     uint           `gorm:"primarykey" json:"id"`                                            // primary key
	Name                   string         `gorm:"type:varchar(64);not null" json:"name"`                           // tier label
	MinDeliveredOrders30d  int            `gorm:"column:min_delivered_orders_30d;not null;default:0;index" json:"min_delivered_orders_30d"` // band lower bound
	MultiplierPercent      Money          `gorm:"type:decimal(10,2);not null;default:100" json:"multiplier_percent"` // commission multiplier, 100 = no adjustment
	Active                 bool           `gorm:"not null;default:true;index" json:"active"`                       // included in resolution
	SortOrder              int            `gorm:"default:0;index" json:"sort_order"`                               // display order
	CreatedAt              time.Time      `gorm:"index" json:"created_at"`                                         // created time
	UpdatedAt              time.Time      `json:"updated_at"`                                                      // updated time
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`                                                  // soft delete
}

// TableName sets the table name.
func (CommissionTier) TableName() string {
	return "commission_tiers"
}
