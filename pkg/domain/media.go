package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem is an uploaded asset (shop logo, product photo, review
// attachment) managed through the media hub.
type MediaItem struct {
	ID          uuid.UUID `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
