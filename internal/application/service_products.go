package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/gurushop/commerce-ledger/internal/domain"
	"github.com/gurushop/commerce-ledger/internal/ports"
)

// ProductCard returns the single-product summary used by catalog cards.
func (s *Service) ProductCard(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	return s.products.GetCard(ctx, productID)
}

// ListProducts returns one catalog page. Page defaults to the first page.
func (s *Service) ListProducts(ctx context.Context, query ports.ProductQuery) (ports.ProductPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	return s.products.List(ctx, query)
}
