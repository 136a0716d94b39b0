package entity

import "time"

// Well known setting keys
const (
	SettingLanguage       = "language"
	SettingManagerPINHash = "manager_pin_hash"
)

// DefaultLanguage is used when no language preference is stored
const DefaultLanguage = "en"

// Setting is a generic key/value preference
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// IsProtected reports whether a key may not be read or written through the
// generic settings endpoints.
func IsProtected(key string) bool {
	return key == SettingManagerPINHash
}
