package ports

import (
	"context"
	"time"

	"github.com/storefront/orders-api/internal/core/domain"
)

// ProductRefInput is a single (productId, qty) pair from the request body.
type ProductRefInput struct {
	ProductID string
	Qty       int
}

// CreateOrderInput carries the data needed to create an order.
// Status is not settable on create; it is forced to pending.
type CreateOrderInput struct {
	UserID   string
	Client   string
	Products []ProductRefInput
}

// UpdateOrderInput carries the full replacement body of an order update.
type UpdateOrderInput struct {
	UserID   string
	Client   string
	Products []ProductRefInput
	Status   string
}

// ProductLine is one assembled entry: the full catalog product plus the
// quantity from the original reference list.
type ProductLine struct {
	Product domain.Product
	Qty     int
}

// OrderView is the client-facing order representation with every product
// reference resolved. Products preserves the ordering of the stored refs.
type OrderView struct {
	ID            string
	UserID        string
	Client        string
	Products      []ProductLine
	Status        string
	DateEntry     time.Time
	DateProcessed *time.Time
}

// ListOrdersInput carries the parameters of the list endpoint.
// Page and Limit are already normalized (1-based page, positive limit).
type ListOrdersInput struct {
	Tags  string
	Page  int
	Limit int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items []OrderView
	Total int64
	Page  int
	Limit int
}

// OrderService defines the use-case operations for orders.
type OrderService interface {
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	GetOrder(ctx context.Context, orderID string) (*OrderView, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error)
	UpdateOrder(ctx context.Context, orderID string, input UpdateOrderInput) (*OrderView, error)
	DeleteOrder(ctx context.Context, orderID string) (*OrderView, error)
}
