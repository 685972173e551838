package domain

import "time"

// Design represents a generated artwork candidate for a product.
type Design struct {
	ID        int64     `json:"id" db:"id"`
	Prompt    string    `json:"prompt" db:"prompt"`
	Style     string    `json:"style" db:"style"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
