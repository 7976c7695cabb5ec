package ports

import (
	"context"

	"github.com/storefront/orders-api/internal/core/domain"
)

// ProductRepository gives read access to the external catalog.
// FindByID returns domain.ErrProductNotFound when the id does not resolve.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
