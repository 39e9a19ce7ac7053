package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating left on a shop.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Shop      uuid.UUID `json:"shop"`
	ShopName  string    `json:"shop_name,omitempty"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
