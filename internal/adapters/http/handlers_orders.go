package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

type orderView struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	OrderAmount decimal.Decimal `json:"order_amount"`
	AlreadyPay  bool            `json:"already_pay"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toOrderView(o domain.Order) orderView {
	return orderView{
		OrderID:     o.OrderID.String(),
		UserID:      o.UserID.String(),
		OrderAmount: o.Amount,
		AlreadyPay:  o.AlreadyPaid,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (h *Handler) markOrderPaid(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order_id")
		return
	}

	order, err := h.service.MarkOrderPaid(r.Context(), orderID)
	if err != nil {
		writeMappedError(w, r, "mark_order_paid", err)
		return
	}
	writeSuccess(w, http.StatusOK, toOrderView(order))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		writeMappedError(w, r, "list_orders", err)
		return
	}
	if len(orders) == 0 {
		writeMessage(w, http.StatusOK, "no orders")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	writeSuccess(w, http.StatusOK, views)
}
