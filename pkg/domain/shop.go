package domain

import "github.com/google/uuid"

// Shop is a storefront registered on the platform.
type Shop struct {
	ID           uuid.UUID `json:"id"`
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
}
