package models

import (
	"time"

	"gorm.io/gorm"
)

// Affiliate is a referrer issued a unique code. Eligibility for commission
// is Active && status not in {suspended, revoked}.
type Affiliate struct {
	ID          uint           `gorm:"primarykey" json:"id"`                              // primary key
	Name        string         `gorm:"type:varchar(120);not null" json:"name"`            // display name
	Phone       string         `gorm:"type:varchar(32);index" json:"phone"`               // contact phone
	Email       string         `gorm:"type:varchar(190);index" json:"email,omitempty"`    // contact email
	City        string         `gorm:"type:varchar(64)" json:"city,omitempty"`            // home city
	RefCode     string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"ref_code"` // referral code, stored uppercased
	Active      bool           `gorm:"not null;default:true;index" json:"active"`         // admin kill switch
	Status      string         `gorm:"type:varchar(20);not null;index" json:"status"`     // active/warning/suspended/revoked
	StrikeCount int            `gorm:"not null;default:0" json:"strike_count"`            // policy violations on record
	Notes       string         `gorm:"type:varchar(500)" json:"notes,omitempty"`          // admin notes
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                           // created time
	UpdatedAt   time.Time      `json:"updated_at"`                                        // updated time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                    // soft delete
}

// TableName sets the table name.
func (Affiliate) TableName() string {
	return "affiliates"
}

// Eligible reports whether the affiliate may earn commission on new orders.
func (a *Affiliate) Eligible() bool {
	if a == nil || !a.Active {
		return false
	}
	return a.Status != "suspended" && a.Status != "revoked"
}
