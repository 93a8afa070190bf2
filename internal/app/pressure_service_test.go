package app_test

import (
	"context"
	"errors"
	"testing"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

type mockPressureRepo struct {
	addFn  func(ctx context.Context, date string, systolic, diastolic int, notes string) (*domain.PressureEntry, error)
	listFn func(ctx context.Context) ([]domain.PressureEntry, error)
}

func (m *mockPressureRepo) AddPressure(ctx context.Context, date string, systolic, diastolic int, notes string) (*domain.PressureEntry, error) {
	if m.addFn != nil {
		return m.addFn(ctx, date, systolic, diastolic, notes)
	}
	return &domain.PressureEntry{ID: 1, Date: date, Systolic: systolic, Diastolic: diastolic, Notes: notes}, nil
}

func (m *mockPressureRepo) ListPressure(ctx context.Context) ([]domain.PressureEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestRecordPressure_Validation(t *testing.T) {
	svc := app.NewPressureService(&mockPressureRepo{})

	tests := []struct {
		name      string
		date      string
		systolic  int
		diastolic int
	}{
		{"zero systolic", "2026-03-01", 0, 80},
		{"zero diastolic", "2026-03-01", 120, 0},
		{"negative systolic", "2026-03-01", -120, 80},
		{"bad date", "yesterday", 120, 80},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordPressure(context.Background(), tc.date, tc.systolic, tc.diastolic, "")
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRecordPressure_Success(t *testing.T) {
	svc := app.NewPressureService(&mockPressureRepo{})
	entry, err := svc.RecordPressure(context.Background(), "2026-03-01", 118, 76, "morning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry == nil || entry.Systolic != 118 || entry.Diastolic != 76 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestRecordPressure_RepoError(t *testing.T) {
	repo := &mockPressureRepo{
		addFn: func(_ context.Context, _ string, _, _ int, _ string) (*domain.PressureEntry, error) {
			return nil, errors.New("db down")
		},
	}
	svc := app.NewPressureService(repo)
	if _, err := svc.RecordPressure(context.Background(), "2026-03-01", 118, 76, ""); err == nil {
		t.Fatal("expected error from repo")
	}
}
