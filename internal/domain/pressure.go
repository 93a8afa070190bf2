package domain

import "context"

// PressureEntry represents a single dated blood-pressure reading.
type PressureEntry struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Notes     string `json:"notes"`
}

// PressureRepository is the port for blood-pressure persistence.
type PressureRepository interface {
	AddPressure(ctx context.Context, date string, systolic, diastolic int, notes string) (*PressureEntry, error)
	ListPressure(ctx context.Context) ([]PressureEntry, error)
}
