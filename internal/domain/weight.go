package domain

import "context"

// WeightEntry represents a single dated weight measurement.
type WeightEntry struct {
	ID      int64    `json:"id"`
	Date    string   `json:"date"`
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
	Notes   string   `json:"notes"`
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	AddWeight(ctx context.Context, date string, weight float64, bodyFat *float64, notes string) (*WeightEntry, error)
	ListWeights(ctx context.Context) ([]WeightEntry, error)
}
