package model

import "time"

// SettingModel is the GORM-specific struct for the 'settings' table.
type SettingModel struct {
	Key       string `gorm:"type:text;primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
