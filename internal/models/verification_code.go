package models

import (
	"time"
)

// VerificationCodeDB represents a one-time email verification code row.
// Several codes may coexist for the same address; validation picks the
// most recently created one that is unused and not expired.
type VerificationCodeDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // Address the code was sent to
	Code      string    `json:"code" db:"code"`             // 6-digit numeric code, leading zeros allowed
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // created_at + TTL
	IsUsed    bool      `json:"is_used" db:"is_used"`       // Set once on successful registration
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// IsExpired reports whether the code is past its expiry at the given time.
func (c *VerificationCodeDB) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
