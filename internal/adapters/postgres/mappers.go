package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

func toDomainUser(row userModel) domain.User {
	return domain.User{
		UserID:       row.UserID,
		Email:        row.Email,
		PasswordHash: row.Password,
		CreatedAt:    row.CreatedAt,
	}
}

func toDomainOrder(row orderModel) domain.Order {
	return domain.Order{
		OrderID:     row.OrderID,
		UserID:      row.UserID,
		Amount:      row.OrderAmount,
		AlreadyPaid: row.AlreadyPay,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toDomainFavorite(row favoriteModel) domain.Favorite {
	return domain.Favorite{
		UserID:    row.UserID,
		ProductID: row.ProductID,
		CreatedAt: row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// normalizeErr folds deadline expiry into domain.ErrTimeout so callers can
// distinguish "the store did not answer in time" from business outcomes.
func normalizeErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return err
}
