package domain

import "time"

// Product represents a print-on-demand listing generated from a trend.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Niche       string    `json:"niche" db:"niche"`
	Marketplace string    `json:"marketplace" db:"marketplace"`
	Status      string    `json:"status" db:"status"`
	Price       float64   `json:"price" db:"price"`
	Currency    string    `json:"currency" db:"currency"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
