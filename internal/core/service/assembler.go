package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/storefront/orders-api/internal/api/metrics"
	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

// OrderAssembler resolves an order's product references against the catalog
// and merges quantities into the client-facing view.
type OrderAssembler struct {
	catalog ports.ProductRepository
}

func NewOrderAssembler(catalog ports.ProductRepository) *OrderAssembler {
	return &OrderAssembler{catalog: catalog}
}

// Assemble resolves every entry of order.Products concurrently and returns the
// enriched view. The output product order matches the input reference order
// regardless of lookup completion order. If any reference does not resolve,
// the whole assembly fails; no partial view is ever returned.
func (a *OrderAssembler) Assemble(ctx context.Context, order *domain.Order) (*ports.OrderView, error) {
	if len(order.Products) == 0 {
		return nil, domain.ErrEmptyProducts
	}

	resolved := make([]domain.Product, len(order.Products))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range order.Products {
		i, ref := i, ref
		g.Go(func() error {
			product, err := a.catalog.FindByID(gctx, ref.ProductID)
			if err != nil {
				return fmt.Errorf("resolve product %s: %w", ref.ProductID, err)
			}
			resolved[i] = *product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.AssemblyErrorsTotal.Inc()
		return nil, err
	}

	lines := make([]ports.ProductLine, len(resolved))
	for i, product := range resolved {
		lines[i] = ports.ProductLine{
			Product: product,
			// Quantity ties back to the first reference with a matching id.
			// Duplicate productId entries all inherit the first match's qty.
			Qty: firstQty(order.Products, product.ID),
		}
	}

	return &ports.OrderView{
		ID:            order.ID,
		UserID:        order.UserID,
		Client:        order.Client,
		Products:      lines,
		Status:        string(order.Status),
		DateEntry:     order.DateEntry,
		DateProcessed: order.DateProcessed,
	}, nil
}

func firstQty(refs []domain.ProductRef, productID string) int {
	for _, ref := range refs {
		if ref.ProductID == productID {
			return ref.Qty
		}
	}
	return 0
}
