package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a back-office account.
type Admin struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                         // primary key
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`         // login name
	PasswordHash       string         `gorm:"not null" json:"-"`                            // bcrypt hash, never returned
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`                  // bumped to invalidate all tokens
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                               // tokens issued before this are rejected
	IsSuper            bool           `gorm:"not null;default:false;index" json:"is_super"` // super admins bypass RBAC
	LastLoginAt        *time.Time     `json:"last_login_at"`                                // last successful login
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                      // created time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                               // soft delete
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
