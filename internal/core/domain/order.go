package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCanceled   OrderStatus = "canceled"
)

// expectedTransitions documents the intended lifecycle graph. Updates only
// check membership in the five statuses; any status may follow any other.
var expectedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusPreparing, StatusCanceled},
	StatusPreparing:  {StatusDelivering, StatusCanceled},
	StatusDelivering: {StatusDelivered, StatusCanceled},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid order status")
var ErrEmptyProducts = errors.New("order must contain at least one product")
var ErrProductNotFound = errors.New("referenced product not found")
var ErrInvalidOrder = errors.New("invalid order payload")

// Valid reports whether s is one of the five known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// CanTransitionTo reports whether next follows s in the documented graph.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range expectedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ProductRef is a non-owning reference into the catalog with a quantity.
type ProductRef struct {
	ProductID string `bson:"productId" json:"productId"`
	Qty       int    `bson:"qty" json:"qty"`
}

// Order is the core aggregate. Product references are resolved against the
// catalog on every read and write; they are not enforced as foreign keys.
type Order struct {
	ID            string
	UserID        string
	Client        string
	Products      []ProductRef
	Status        OrderStatus
	DateEntry     time.Time
	DateProcessed *time.Time // nil until the first update
}
