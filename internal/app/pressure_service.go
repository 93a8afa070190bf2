package app

import (
	"context"
	"fmt"
	"time"

	"healthlog/internal/domain"
)

// PressureService encapsulates blood-pressure-log use cases.
type PressureService struct {
	repo domain.PressureRepository
}

// NewPressureService creates a PressureService backed by the given repository.
func NewPressureService(repo domain.PressureRepository) *PressureService {
	return &PressureService{repo: repo}
}

// RecordPressure validates and stores a new blood-pressure reading.
func (s *PressureService) RecordPressure(ctx context.Context, date string, systolic, diastolic int, notes string) (*domain.PressureEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrValidation)
	}
	if systolic <= 0 {
		return nil, fmt.Errorf("systolic must be > 0: %w", domain.ErrValidation)
	}
	if diastolic <= 0 {
		return nil, fmt.Errorf("diastolic must be > 0: %w", domain.ErrValidation)
	}
	return s.repo.AddPressure(ctx, date, systolic, diastolic, notes)
}

// ListPressure returns all blood-pressure entries ordered by date ascending.
func (s *PressureService) ListPressure(ctx context.Context) ([]domain.PressureEntry, error) {
	return s.repo.ListPressure(ctx)
}
