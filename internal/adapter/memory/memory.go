// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"healthlog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	weights  []domain.WeightEntry
	pressure []domain.PressureEntry

	weightIDCounter   int64
	pressureIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.PressureRepository = (*DB)(nil)

// --- WeightRepository ---

// AddWeight appends a weight entry.
func (db *DB) AddWeight(ctx context.Context, date string, weight float64, bodyFat *float64, notes string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weightIDCounter++
	entry := domain.WeightEntry{
		ID:     db.weightIDCounter,
		Date:   date,
		Weight: weight,
		Notes:  notes,
	}
	if bodyFat != nil {
		bf := *bodyFat
		entry.BodyFat = &bf
	}
	db.weights = append(db.weights, entry)
	ret := entry
	return &ret, nil
}

// ListWeights returns all weight entries ordered by date ascending,
// insertion order breaking ties.
func (db *DB) ListWeights(ctx context.Context) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, len(db.weights))
	copy(result, db.weights)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// --- PressureRepository ---

// AddPressure appends a blood-pressure entry.
func (db *DB) AddPressure(ctx context.Context, date string, systolic, diastolic int, notes string) (*domain.PressureEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pressureIDCounter++
	entry := domain.PressureEntry{
		ID:        db.pressureIDCounter,
		Date:      date,
		Systolic:  systolic,
		Diastolic: diastolic,
		Notes:     notes,
	}
	db.pressure = append(db.pressure, entry)
	ret := entry
	return &ret, nil
}

// ListPressure returns all blood-pressure entries ordered by date
// ascending, insertion order breaking ties.
func (db *DB) ListPressure(ctx context.Context) ([]domain.PressureEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.PressureEntry, len(db.pressure))
	copy(result, db.pressure)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
