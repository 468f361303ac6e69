package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use credential authorizing a password change
// out-of-band. It is deleted on redemption; an expired row is never accepted.
type PasswordResetToken struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
