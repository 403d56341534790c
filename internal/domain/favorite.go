package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the saved (user, product) bookmark pair. It has no identity
// beyond the pair; the store enforces at most one row per pair.
type Favorite struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// FavoriteOutcome reports the business result of a favorites mutation.
// Duplicate and Removed are normal branches, not errors.
type FavoriteOutcome int

const (
	FavoriteCreated FavoriteOutcome = iota
	// FavoriteDuplicate means the pair already existed and nothing changed.
	FavoriteDuplicate
	// FavoriteRemoved is returned whether or not a row existed.
	FavoriteRemoved
)
