package domain

import "github.com/google/uuid"

// Booking statuses as reported by the backend.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a customer appointment at a shop.
type Booking struct {
	ID           uuid.UUID `json:"id"`
	Shop         uuid.UUID `json:"shop"`
	ShopName     string    `json:"shop_name,omitempty"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // HH:MM
	Status       string    `json:"status"`
}
