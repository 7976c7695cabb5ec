package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type productRefRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty"       validate:"required,gt=0"`
}

type createOrderRequest struct {
	UserID   string              `json:"userId"   validate:"required"`
	Client   string              `json:"client"   validate:"required"`
	Products []productRefRequest `json:"products" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	UserID   string              `json:"userId"   validate:"required"`
	Client   string              `json:"client"`
	Products []productRefRequest `json:"products" validate:"required,min=1,dive"`
	Status   string              `json:"status"   validate:"required"`
}

// Response-only types owned by the transport layer. The JSON contract uses
// the historical `_id` field names and renders dateProcessed as an empty
// string until the first update.

type productResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	DateEntry time.Time `json:"dateEntry"`
}

type productLineResponse struct {
	Product productResponse `json:"product"`
	Qty     int             `json:"qty"`
}

type orderResponse struct {
	ID            string                `json:"_id"`
	UserID        string                `json:"userId"`
	Client        string                `json:"client"`
	Products      []productLineResponse `json:"products"`
	Status        string                `json:"status"`
	DateEntry     time.Time             `json:"dateEntry"`
	DateProcessed string                `json:"dateProcessed"`
	Message       string                `json:"message,omitempty"`
}
