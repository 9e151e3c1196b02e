package entity

import (
	"time"

	"github.com/google/uuid"
)

// Promotion represents a promotional banner message shown in the storefront,
// localized per supported language and optionally limited to a time window.
type Promotion struct {
	ID        uuid.UUID  `json:"id"`         // The unique identifier for the promotion.
	MessageEn string     `json:"message_en"` // English banner text.
	MessageFr string     `json:"message_fr"` // French banner text.
	MessageAr string     `json:"message_ar"` // Arabic banner text.
	IsActive  bool       `json:"is_active"`  // Toggle independent of the time window.
	StartsAt  *time.Time `json:"starts_at"`  // Optional window start; nil means always.
	EndsAt    *time.Time `json:"ends_at"`    // Optional window end; nil means never.
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// VisibleAt reports whether the promotion should be shown at the given time.
func (p *Promotion) VisibleAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}

	return true
}
