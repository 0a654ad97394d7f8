package domain

import "time"

// Timestamps tracks when a listing was created and last bumped.
// A bump refreshes prominence without changing CreatedAt.
type Timestamps struct {
	createdAt time.Time
	bumpedAt  time.Time
}

// NewTimestamps requires createdAt; a zero bumpedAt defaults to createdAt.
func NewTimestamps(createdAt, bumpedAt time.Time) (Timestamps, error) {
	if createdAt.IsZero() {
		return Timestamps{}, invalidArg("created_at", "created_at is required")
	}
	if bumpedAt.IsZero() {
		bumpedAt = createdAt
	}
	return Timestamps{createdAt: createdAt, bumpedAt: bumpedAt}, nil
}

func (t Timestamps) CreatedAt() time.Time { return t.createdAt }
func (t Timestamps) BumpedAt() time.Time  { return t.bumpedAt }

// WithBump returns a copy stamped with a new bump time.
func (t Timestamps) WithBump(bumpedAt time.Time) (Timestamps, error) {
	return NewTimestamps(t.createdAt, bumpedAt)
}
