package app

import (
	"context"
	"fmt"
	"time"

	"healthlog/internal/domain"
)

// WeightService encapsulates weight-log use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// RecordWeight validates and stores a new weight entry. A body-fat
// reading of zero or less is stored as absent, matching the dashboard
// input where zero means "not measured".
func (s *WeightService) RecordWeight(ctx context.Context, date string, weight, bodyFat float64, notes string) (*domain.WeightEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrValidation)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("weight must be > 0: %w", domain.ErrValidation)
	}
	var bf *float64
	if bodyFat > 0 {
		bf = &bodyFat
	}
	return s.repo.AddWeight(ctx, date, weight, bf, notes)
}

// ListWeights returns all weight entries ordered by date ascending.
func (s *WeightService) ListWeights(ctx context.Context) ([]domain.WeightEntry, error) {
	return s.repo.ListWeights(ctx)
}
