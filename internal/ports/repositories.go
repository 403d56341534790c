package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

// FavoriteRepository persists the (user, product) bookmark set.
// Insert must rely on the store's composite unique constraint and report a
// violation as domain.ErrConflict; the application never trusts a prior read
// to rule out duplicates.
type FavoriteRepository interface {
	Insert(ctx context.Context, userID, productID uuid.UUID) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error)
}

// OrderRepository reads orders and performs the single in-scope mutation:
// flipping the paid flag.
type OrderRepository interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	// MarkPaid sets already_paid on the order and returns the resulting
	// snapshot. It succeeds even when the order was already paid; unknown
	// orders yield domain.ErrNotFound.
	MarkPaid(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	// SumAmountByUser aggregates total spend, defaulting to zero when the
	// user has no orders.
	SumAmountByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// UserRepository reads account identity and updates the stored password hash
// during recovery.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// ProductPage is one page of catalog results plus total page count so clients
// can render pagination without a second query.
type ProductPage struct {
	Items      []domain.Product
	Page       int
	TotalPages int
}

// ProductQuery narrows the catalog listing. Zero values mean "no filter".
type ProductQuery struct {
	Search string
	Page   int
}

// ProductRepository is the read-only catalog surface.
type ProductRepository interface {
	GetCard(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	List(ctx context.Context, query ProductQuery) (ProductPage, error)
}
