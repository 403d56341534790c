package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

const orderPaidEventType = "commerce.order.paid"

// MarkOrderPaid flips the order's paid flag. The transition is terminal and
// idempotent: re-invoking on a paid order returns the same snapshot without
// error. Unknown orders yield domain.ErrNotFound.
func (s *Service) MarkOrderPaid(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	s.publishOrderPaid(ctx, order)
	return order, nil
}

// ListOrders returns the user's order history. The user must exist; an empty
// history is a normal result.
func (s *Service) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, userID)
}

// publishOrderPaid emits the paid event after the transition has committed.
// Delivery is best-effort: the payment state is already durable, so a bus
// failure is logged and does not fail the request.
func (s *Service) publishOrderPaid(ctx context.Context, order domain.Order) {
	payload, err := json.Marshal(map[string]any{
		"order_id": order.OrderID.String(),
		"user_id":  order.UserID.String(),
		"amount":   order.Amount.String(),
		"paid_at":  s.nowFn(),
	})
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, orderPaidEventType, payload, order.OrderID.String()); err != nil {
		slog.Default().WarnContext(ctx, "order paid event not published",
			"module", "application",
			"operation", "publish_order_paid",
			"outcome", "failure",
			"order_id", order.OrderID.String(),
			"error", err.Error(),
		)
	}
}
