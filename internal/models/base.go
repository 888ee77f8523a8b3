package models

import (
	"time"

	"pocketledger/internal/uuid"
)

// Base contains the identity and timestamp fields shared by every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Init assigns a UUIDv7 (when unset) and stamps creation time on a new record.
func (b *Base) Init(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch stamps the record as modified at now.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}
