package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

// stubOrderRepo keeps orders in a map and lists them ordered by id, mirroring
// the mongo repository's sort.
type stubOrderRepo struct {
	seq    int
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	r.seq++
	id := fmt.Sprintf("order-%03d", r.seq)
	clone := *order
	clone.ID = id
	r.orders[id] = &clone
	return id, nil
}

func (r *stubOrderRepo) Update(_ context.Context, id string, order *domain.Order) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	clone := *order
	clone.ID = id
	r.orders[id] = &clone
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []*domain.Order
	for i, id := range ids {
		if int64(i) < filter.Skip {
			continue
		}
		if int64(len(out)) >= filter.Limit {
			break
		}
		clone := *r.orders[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrderRepo) Count(_ context.Context, _ ports.ListOrdersFilter) (int64, error) {
	return int64(len(r.orders)), nil
}

func newOrderService(orders *stubOrderRepo, users *stubUserRepo, catalog *stubCatalog) *OrderService {
	return NewOrderService(orders, users, NewOrderAssembler(catalog), zerolog.Nop())
}

func seededUser(repo *stubUserRepo, t *testing.T) *domain.User {
	t.Helper()
	id, err := repo.Create(context.Background(), &domain.User{Email: "buyer@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	user, _ := repo.FindByID(context.Background(), id)
	return user
}

func TestCreateOrder_ForcesPendingAndDates(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1", "p2"))

	view, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID: user.ID,
		Client: "acme",
		Products: []ports.ProductRefInput{
			{ProductID: "p1", Qty: 2},
			{ProductID: "p2", Qty: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if view.ID == "" {
		t.Error("view.ID is empty")
	}
	if view.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want pending", view.Status)
	}
	if view.DateEntry.IsZero() {
		t.Error("dateEntry not stamped")
	}
	if view.DateProcessed != nil {
		t.Errorf("dateProcessed = %v, want nil on create", view.DateProcessed)
	}

	stored, err := orders.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if stored.Status != domain.StatusPending {
		t.Errorf("stored status = %q, want pending", stored.Status)
	}
}

func TestCreateOrder_Rejections(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	ref := []ports.ProductRefInput{{ProductID: "p1", Qty: 1}}

	cases := []struct {
		name    string
		input   ports.CreateOrderInput
		wantErr error
	}{
		{"missing client", ports.CreateOrderInput{UserID: user.ID, Products: ref}, domain.ErrInvalidOrder},
		{"empty products", ports.CreateOrderInput{UserID: user.ID, Client: "acme"}, domain.ErrEmptyProducts},
		{"unknown user", ports.CreateOrderInput{UserID: "ghost", Client: "acme", Products: ref}, domain.ErrInvalidOrder},
		{"missing user", ports.CreateOrderInput{Client: "acme", Products: ref}, domain.ErrInvalidOrder},
		{"unresolved product", ports.CreateOrderInput{
			UserID:   user.ID,
			Client:   "acme",
			Products: []ports.ProductRefInput{{ProductID: "nope", Qty: 1}},
		}, domain.ErrProductNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	if len(orders.orders) != 0 {
		t.Errorf("%d orders persisted after rejected creates, want 0", len(orders.orders))
	}
}

func TestUpdateOrder_StampsDateProcessedEveryTime(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	update := ports.UpdateOrderInput{
		UserID:   user.ID,
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
		Status:   string(domain.StatusPending),
	}

	// Two updates keeping the same status both restamp dateProcessed.
	first, err := svc.UpdateOrder(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("first UpdateOrder: %v", err)
	}
	if first.DateProcessed == nil {
		t.Fatal("dateProcessed not stamped on first update")
	}

	second, err := svc.UpdateOrder(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("second UpdateOrder: %v", err)
	}
	if second.DateProcessed == nil {
		t.Fatal("dateProcessed not stamped on second update")
	}
	if second.DateProcessed.Before(*first.DateProcessed) {
		t.Errorf("second stamp %v precedes first %v", second.DateProcessed, first.DateProcessed)
	}

	if !second.DateEntry.Equal(created.DateEntry) {
		t.Errorf("dateEntry changed on update: %v -> %v", created.DateEntry, second.DateEntry)
	}
}

func TestUpdateOrder_AcceptsAnyKnownStatus(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// pending -> delivered skips intermediate states and is still accepted.
	for _, status := range []domain.OrderStatus{domain.StatusDelivered, domain.StatusPreparing, domain.StatusCanceled} {
		view, err := svc.UpdateOrder(context.Background(), created.ID, ports.UpdateOrderInput{
			UserID:   user.ID,
			Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
			Status:   string(status),
		})
		if err != nil {
			t.Fatalf("UpdateOrder to %q: %v", status, err)
		}
		if view.Status != string(status) {
			t.Errorf("status = %q, want %q", view.Status, status)
		}
	}
}

func TestUpdateOrder_Rejections(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	ref := []ports.ProductRefInput{{ProductID: "p1", Qty: 1}}

	cases := []struct {
		name    string
		orderID string
		input   ports.UpdateOrderInput
		wantErr error
	}{
		{"unknown status", created.ID, ports.UpdateOrderInput{UserID: user.ID, Products: ref, Status: "shipped"}, domain.ErrInvalidStatus},
		{"empty status", created.ID, ports.UpdateOrderInput{UserID: user.ID, Products: ref}, domain.ErrInvalidStatus},
		{"empty products", created.ID, ports.UpdateOrderInput{UserID: user.ID, Status: "pending"}, domain.ErrEmptyProducts},
		{"unknown user", created.ID, ports.UpdateOrderInput{UserID: "ghost", Products: ref, Status: "pending"}, domain.ErrInvalidOrder},
		{"unknown order", "order-999", ports.UpdateOrderInput{UserID: user.ID, Products: ref, Status: "pending"}, domain.ErrOrderNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateOrder(context.Background(), tc.orderID, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// A rejected body never stamps dateProcessed.
	stored, _ := orders.FindByID(context.Background(), created.ID)
	if stored.DateProcessed != nil {
		t.Errorf("dateProcessed stamped by rejected update: %v", stored.DateProcessed)
	}
}

func TestUpdateOrder_KeepsClientWhenOmitted(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	view, err := svc.UpdateOrder(context.Background(), created.ID, ports.UpdateOrderInput{
		UserID:   user.ID,
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 3}},
		Status:   string(domain.StatusPreparing),
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if view.Client != "acme" {
		t.Errorf("client = %q, want acme", view.Client)
	}
}

func TestDeleteOrder_ReturnsSnapshot(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p1", Qty: 4}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	view, err := svc.DeleteOrder(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if view.ID != created.ID || len(view.Products) != 1 || view.Products[0].Qty != 4 {
		t.Errorf("snapshot mismatch: %+v", view)
	}

	if _, err := svc.GetOrder(context.Background(), created.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("order still readable after delete: err = %v", err)
	}

	if _, err := svc.DeleteOrder(context.Background(), "order-999"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestListOrders_Pagination(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	svc := newOrderService(orders, users, catalogWith("p1"))

	for i := 0; i < 12; i++ {
		_, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
			UserID:   user.ID,
			Client:   fmt.Sprintf("client-%02d", i),
			Products: []ports.ProductRefInput{{ProductID: "p1", Qty: i + 1}},
		})
		if err != nil {
			t.Fatalf("seed order %d: %v", i, err)
		}
	}

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if result.Total != 12 {
		t.Errorf("total = %d, want 12", result.Total)
	}
	if len(result.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(result.Items))
	}
	// Skip 5, so the page starts at the sixth order.
	if result.Items[0].Client != "client-05" {
		t.Errorf("first item client = %q, want client-05", result.Items[0].Client)
	}

	// A page past the end returns empty items with the total intact.
	tail, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Page: 4, Limit: 5})
	if err != nil {
		t.Fatalf("ListOrders past end: %v", err)
	}
	if len(tail.Items) != 0 || tail.Total != 12 {
		t.Errorf("past-end page: items = %d, total = %d, want 0 and 12", len(tail.Items), tail.Total)
	}
}

func TestListOrders_FailsWhenAnyReferenceUnresolved(t *testing.T) {
	orders := newStubOrderRepo()
	users := newStubUserRepo()
	user := seededUser(users, t)
	catalog := catalogWith("p1", "p2")
	svc := newOrderService(orders, users, catalog)

	if _, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   user.ID,
		Client:   "acme",
		Products: []ports.ProductRefInput{{ProductID: "p2", Qty: 1}},
	}); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// The catalog entry disappears after the order was stored.
	delete(catalog.products, "p2")

	_, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Page: 1, Limit: 10})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}

	if _, err := svc.GetOrder(context.Background(), "order-001"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("GetOrder err = %v, want ErrProductNotFound", err)
	}

	_, err = svc.UpdateOrder(context.Background(), "order-001", ports.UpdateOrderInput{
		UserID:   user.ID,
		Products: []ports.ProductRefInput{{ProductID: "p2", Qty: 1}},
		Status:   string(domain.StatusPreparing),
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("UpdateOrder err = %v, want ErrProductNotFound", err)
	}
	stored, _ := orders.FindByID(context.Background(), "order-001")
	if stored.DateProcessed != nil {
		t.Error("rejected update stamped dateProcessed")
	}

	if _, err := svc.DeleteOrder(context.Background(), "order-001"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("DeleteOrder err = %v, want ErrProductNotFound", err)
	}
	if _, err := orders.FindByID(context.Background(), "order-001"); err != nil {
		t.Fatal("order deleted despite failed snapshot assembly")
	}
}
