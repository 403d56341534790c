package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) GetByID(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var rec orderModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, normalizeErr(ctx, err)
	}
	return toDomainOrder(rec), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var rows []orderModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, normalizeErr(ctx, err)
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainOrder(row))
	}
	return out, nil
}

// MarkPaid runs the unconditional flag update so the transition stays a
// single statement. Re-paying an already paid order matches the same row and
// is tolerated; zero matched rows means the order does not exist.
func (r *orderRepository) MarkPaid(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", orderID).
		UpdateColumn("already_pay", true)
	if res.Error != nil {
		return domain.Order{}, normalizeErr(ctx, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Order{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, orderID)
}

func (r *orderRepository) SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Select("COALESCE(SUM(order_amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, normalizeErr(ctx, err)
	}
	return total, nil
}
