package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug          string    `gorm:"type:text;not null;uniqueIndex"`
	NameEn        string    `gorm:"type:text;not null"`
	NameFr        string    `gorm:"type:text;not null"`
	NameAr        string    `gorm:"type:text;not null"`
	DescriptionEn string    `gorm:"type:text"`
	DescriptionFr string    `gorm:"type:text"`
	DescriptionAr string    `gorm:"type:text"`
	ImageURL      string    `gorm:"type:text"`
	SortOrder     int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
