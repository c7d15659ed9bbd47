package models

// Setting is admin-mutable configuration stored as key/value.
type Setting struct {
	Key       string `gorm:"primarykey" json:"key"`  // configuration key
	ValueJSON JSON   `gorm:"type:json" json:"value"` // configuration value
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}
