package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the account identity as the ledger sees it. Registration and
// authentication are owned elsewhere; this service only reads identity and
// creation time, and rewrites the password hash during recovery.
type User struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
