package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

// Order is a checkout result owned by an out-of-scope process. The only
// in-scope mutation is the one-way Unpaid -> Paid flip of AlreadyPaid.
type Order struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	AlreadyPaid bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
