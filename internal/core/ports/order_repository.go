package ports

import (
	"context"

	"github.com/storefront/orders-api/internal/core/domain"
)

// ListOrdersFilter carries the query parameters for listing orders.
// Tags is passed through to the store filter verbatim; empty means no filter.
type ListOrdersFilter struct {
	Tags  string
	Skip  int64
	Limit int64
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (string, error)
	Update(ctx context.Context, id string, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	// List returns a page of orders matching filter, ordered by id.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	// Count returns the total number of orders matching filter, ignoring Skip/Limit.
	Count(ctx context.Context, filter ListOrdersFilter) (int64, error)
}
