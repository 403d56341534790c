package domain

import (
	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

// Product is read-only catalog data from the ledger's perspective.
type Product struct {
	ProductID uuid.UUID
	Name      string
	Model     string
	ListPrice decimal.Decimal
	ImagePath string
}
