package models

import "time"

// Base carries the identity and audit columns shared by every entity.
//
// The id is opaque to callers; it is assigned by the repository when the
// entity is first stored and never changes afterwards.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the entity identifier.
func (b *Base) GetID() string {
	return b.ID
}

// SetID assigns the entity identifier.
func (b *Base) SetID(id string) {
	b.ID = id
}

// Stamp records a write at now. CreatedAt is only set on the first write.
func (b *Base) Stamp(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
