package domain

import "time"

// Sweet is a purchasable catalog item.
//
// Invariant: Quantity never goes below zero. Every mutation path that touches
// it (purchase, restock) is delegated to a store-level atomic increment.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
