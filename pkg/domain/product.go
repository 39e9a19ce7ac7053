package domain

import "github.com/google/uuid"

// Product is an item sold by a shop.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Shop        uuid.UUID `json:"shop"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"is_active"`
}
