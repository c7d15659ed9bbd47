package models

import "time"

// AffiliateClick records a referral-link visit.
type AffiliateClick struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                       // primary key
	AffiliateID uint      `gorm:"not null;index" json:"affiliate_id"`                         // visited affiliate
	LandingPath string    `gorm:"type:varchar(512)" json:"landing_path"`                      // landing page path
	Referrer    string    `gorm:"type:varchar(1024)" json:"referrer"`                         // referrer header
	ClientIP    string    `gorm:"type:varchar(64)" json:"client_ip"`                          // client IP
	UserAgent   string    `gorm:"type:varchar(1024)" json:"user_agent"`                       // client UA
	CreatedAt   time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // created time

	Affiliate Affiliate `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"` // visited affiliate
}

// TableName sets the table name.
func (AffiliateClick) TableName() string {
	return "affiliate_clicks"
}
