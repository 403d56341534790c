package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

type favoriteRepository struct {
	db *gorm.DB
}

// Insert creates the pair and lets the composite primary key arbitrate
// concurrent duplicates. The constraint violation, not a prior read, is the
// duplicate signal.
func (r *favoriteRepository) Insert(ctx context.Context, userID, productID uuid.UUID) error {
	rec := favoriteModel{UserID: userID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return normalizeErr(ctx, err)
	}
	return nil
}

// Delete removes any matching row; deleting an absent pair is not an error.
func (r *favoriteRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&favoriteModel{}).Error
	return normalizeErr(ctx, err)
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var rec favoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, normalizeErr(ctx, err)
	}
	return true, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	var rows []favoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, normalizeErr(ctx, err)
	}
	out := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainFavorite(row))
	}
	return out, nil
}
