package models

import (
	"time"

	"gorm.io/gorm"
)

// Parlour is a registered wholesale customer (beauty parlour).
type Parlour struct {
	ID          uint           `gorm:"primarykey" json:"id"`                           // primary key
	Name        string         `gorm:"type:varchar(190);not null" json:"name"`         // business name
	Phone       string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"phone"` // contact phone, login handle
	City        string         `gorm:"type:varchar(64);index" json:"city,omitempty"`   // city
	Status      string         `gorm:"type:varchar(20);not null;index" json:"status"`  // active/warning/suspended
	StrikeCount int            `gorm:"not null;default:0" json:"strike_count"`         // policy violations on record
	Notes       string         `gorm:"type:varchar(500)" json:"notes,omitempty"`       // admin notes
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                        // created time
	UpdatedAt   time.Time      `json:"updated_at"`                                     // updated time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                 // soft delete
}

// TableName sets the table name.
func (Parlour) TableName() string {
	return "parlours"
}
