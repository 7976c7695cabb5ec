package domain

import "time"

// Product is a read-only catalog item owned by an external catalog component.
type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	DateEntry time.Time `json:"dateEntry"`
}
