package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken backs the "send password reset email" flow. A token
// is single-use and expires a configured number of minutes after it was
// issued.
type PasswordResetToken struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}
