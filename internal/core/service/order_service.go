package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/orders-api/internal/api/metrics"
	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

// OrderService implements ports.OrderService.
type OrderService struct {
	orders    ports.OrderRepository
	users     ports.UserRepository
	assembler *OrderAssembler
	logger    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, assembler *OrderAssembler, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, assembler: assembler, logger: logger}
}

// ListOrders returns one page of assembled orders plus the total match count.
// A page past the last yields an empty item list with correct metadata.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	filter := ports.ListOrdersFilter{
		Tags:  input.Tags,
		Skip:  int64(input.Limit) * int64(input.Page-1),
		Limit: int64(input.Limit),
	}

	raw, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	items := make([]ports.OrderView, 0, len(raw))
	for _, order := range raw {
		view, err := s.assembler.Assemble(ctx, order)
		if err != nil {
			return nil, err
		}
		items = append(items, *view)
	}

	return &ports.ListOrdersResult{
		Items: items,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

// GetOrder returns the assembled view of a single order.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*ports.OrderView, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Assemble(ctx, order)
}

// CreateOrder validates the referenced user and products, then persists the
// order with status forced to pending, dateEntry set once, and dateProcessed
// left empty. Product references are resolved before the insert; a reference
// that vanishes between validation and insert is caught on the next read.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderView, error) {
	if input.Client == "" {
		return nil, fmt.Errorf("%w: client is required", domain.ErrInvalidOrder)
	}
	if len(input.Products) == 0 {
		return nil, domain.ErrEmptyProducts
	}
	if err := s.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:    input.UserID,
		Client:    input.Client,
		Products:  toProductRefs(input.Products),
		Status:    domain.StatusPending,
		DateEntry: time.Now().UTC(),
	}

	view, err := s.assembler.Assemble(ctx, order)
	if err != nil {
		return nil, err
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}
	view.ID = id

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("order_id", id).Str("user_id", input.UserID).Msg("order created")
	return view, nil
}

// UpdateOrder replaces the order body after full revalidation. The status must
// be one of the five known literals; any-to-any transitions are accepted, and
// dateProcessed is stamped on every successful update, including updates that
// keep the same status. dateEntry is immutable.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, input ports.UpdateOrderInput) (*ports.OrderView, error) {
	status := domain.OrderStatus(input.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}
	if len(input.Products) == 0 {
		return nil, domain.ErrEmptyProducts
	}
	if err := s.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	existing, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := &domain.Order{
		ID:            existing.ID,
		UserID:        input.UserID,
		Client:        input.Client,
		Products:      toProductRefs(input.Products),
		Status:        status,
		DateEntry:     existing.DateEntry,
		DateProcessed: &now,
	}
	if updated.Client == "" {
		updated.Client = existing.Client
	}

	view, err := s.assembler.Assemble(ctx, updated)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, orderID, updated); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to update order")
		return nil, err
	}

	metrics.OrdersUpdatedTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("order_id", orderID).Str("status", string(status)).Msg("order updated")
	return view, nil
}

// DeleteOrder removes the order and returns its pre-delete assembled snapshot.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) (*ports.OrderView, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view, err := s.assembler.Assemble(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", orderID).Msg("order deleted")
	return view, nil
}

// checkUser verifies the userId resolves to an existing user. An unknown user
// is a validation failure on the order body, not a 404.
func (s *OrderService) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidOrder)
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: userId %q does not resolve", domain.ErrInvalidOrder, userID)
		}
		return err
	}
	return nil
}

func toProductRefs(inputs []ports.ProductRefInput) []domain.ProductRef {
	refs := make([]domain.ProductRef, len(inputs))
	for i, in := range inputs {
		refs[i] = domain.ProductRef{ProductID: in.ProductID, Qty: in.Qty}
	}
	return refs
}
