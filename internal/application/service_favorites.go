package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

// AddFavorite inserts the (user, product) pair. The store's unique constraint
// is the arbiter under concurrent duplicates; a violation is reported as the
// benign FavoriteDuplicate outcome, not a failure.
func (s *Service) AddFavorite(ctx context.Context, userID, productID uuid.UUID) (domain.FavoriteOutcome, error) {
	err := s.favorites.Insert(ctx, userID, productID)
	if err == nil {
		return domain.FavoriteCreated, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return domain.FavoriteDuplicate, nil
	}
	return 0, err
}

// RemoveFavorite deletes any matching row. Removing an absent pair is still
// FavoriteRemoved; the operation is idempotent.
func (s *Service) RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) (domain.FavoriteOutcome, error) {
	if err := s.favorites.Delete(ctx, userID, productID); err != nil {
		return 0, err
	}
	return domain.FavoriteRemoved, nil
}

// IsFavorited reports presence of the pair without mutating state.
func (s *Service) IsFavorited(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.favorites.Exists(ctx, userID, productID)
}

// ListFavorites returns the user's bookmarks in insertion order. No rows is
// an empty slice, not an error.
func (s *Service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}
