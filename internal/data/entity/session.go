package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bearer token persisted across page loads; the client sends
// it as Authorization: Bearer <token>.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
