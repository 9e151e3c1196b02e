package model

import (
	"time"

	"github.com/google/uuid"
)

// PromotionModel is the GORM-specific struct for the 'promotions' table.
type PromotionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageEn string     `gorm:"type:text;not null"`
	MessageFr string     `gorm:"type:text;not null"`
	MessageAr string     `gorm:"type:text;not null"`
	IsActive  bool       `gorm:"not null;default:true;index"`
	StartsAt  *time.Time `gorm:"index"`
	EndsAt    *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
