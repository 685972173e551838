package domain

import "time"

// Trend represents one discovered market trend observation. Records are
// written by the ingestion pipeline; the API only reads them.
type Trend struct {
	ID               int64     `json:"id" db:"id"`
	Marketplace      string    `json:"marketplace" db:"marketplace"`
	ProductTitle     string    `json:"product_title" db:"product_title"`
	Niche            string    `json:"niche" db:"niche"`
	Score            float64   `json:"score" db:"score"`
	DemandLevel      string    `json:"demand_level" db:"demand_level"`
	CompetitionLevel string    `json:"competition_level" db:"competition_level"`
	Price            float64   `json:"price" db:"price"`
	Currency         string    `json:"currency" db:"currency"`
	SampleImageURL   *string   `json:"sample_image_url" db:"sample_image_url"`
	LastSeen         time.Time `json:"last_seen" db:"last_seen"`
}
