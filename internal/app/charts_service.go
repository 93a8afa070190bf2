package app

import (
	"context"

	"healthlog/internal/domain"
)

// ChartsService assembles chart-ready payloads from the stored series
// and the derived statistics.
type ChartsService struct {
	weightRepo   domain.WeightRepository
	pressureRepo domain.PressureRepository
}

// NewChartsService creates a ChartsService backed by the given repositories.
func NewChartsService(wr domain.WeightRepository, pr domain.PressureRepository) *ChartsService {
	return &ChartsService{weightRepo: wr, pressureRepo: pr}
}

// WeightChart is the weight dashboard payload: the series in date
// order, the rolling trend aligned with it, summary stats, and the
// axis ranges and reference overlays. Stats and ranges are null until
// the first entry exists.
type WeightChart struct {
	Entries      []domain.WeightEntry `json:"entries"`
	Trend        []*float64           `json:"trend"`
	Stats        *domain.WeightStats  `json:"stats"`
	WeightAxis   *domain.Range        `json:"weightAxis"`
	BodyFatAxis  *domain.Range        `json:"bodyFatAxis"`
	TargetWeight float64              `json:"targetWeight"`
	BodyFatBand  domain.Band          `json:"bodyFatBand"`
}

// PressureChart is the blood-pressure dashboard payload.
type PressureChart struct {
	Entries       []domain.PressureEntry `json:"entries"`
	Stats         *domain.PressureStats  `json:"stats"`
	Axis          *domain.Range          `json:"axis"`
	SystolicBand  domain.Band            `json:"systolicBand"`
	DiastolicBand domain.Band            `json:"diastolicBand"`
}

// GetWeightChart loads the weight series and computes its derived view.
func (s *ChartsService) GetWeightChart(ctx context.Context) (*WeightChart, error) {
	entries, err := s.weightRepo.ListWeights(ctx)
	if err != nil {
		return nil, err
	}
	return &WeightChart{
		Entries:      entries,
		Trend:        domain.RollingTrend(entries, domain.TrendWindow),
		Stats:        domain.SummarizeWeights(entries),
		WeightAxis:   domain.WeightAxisRange(entries, domain.TargetWeight),
		BodyFatAxis:  domain.BodyFatAxisRange(entries, domain.MinTargetBodyFat, domain.MaxTargetBodyFat),
		TargetWeight: domain.TargetWeight,
		BodyFatBand:  domain.Band{Min: domain.MinTargetBodyFat, Max: domain.MaxTargetBodyFat},
	}, nil
}

// GetPressureChart loads the blood-pressure series and computes its
// derived view.
func (s *ChartsService) GetPressureChart(ctx context.Context) (*PressureChart, error) {
	entries, err := s.pressureRepo.ListPressure(ctx)
	if err != nil {
		return nil, err
	}
	return &PressureChart{
		Entries:       entries,
		Stats:         domain.SummarizePressure(entries),
		Axis:          domain.PressureAxisRange(entries, domain.MinTargetDiastolic),
		SystolicBand:  domain.Band{Min: domain.MinTargetSystolic, Max: domain.MaxTargetSystolic},
		DiastolicBand: domain.Band{Min: domain.MinTargetDiastolic, Max: domain.MaxTargetDiastolic},
	}, nil
}
