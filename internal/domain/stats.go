package domain

import "math"

// Fixed chart reference values overlaid on the dashboard, independent
// of observed data.
const (
	TargetWeight       = 100.0
	MinTargetBodyFat   = 11.0
	MaxTargetBodyFat   = 20.0
	MinTargetSystolic  = 100.0
	MaxTargetSystolic  = 120.0
	MinTargetDiastolic = 60.0
	MaxTargetDiastolic = 80.0
)

// TrendWindow is the number of entries averaged per rolling-trend point.
const TrendWindow = 3

// Range is a computed chart axis range derived from observed extremes.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Band is a fixed healthy-range reference interval.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WeightStats summarizes a weight series ordered by date ascending.
type WeightStats struct {
	Latest  float64  `json:"latest"`
	Average float64  `json:"average"`
	Change  *float64 `json:"change"`
}

// SummarizeWeights computes summary stats for a weight series. Returns
// nil for an empty series; Change is nil with fewer than two entries.
func SummarizeWeights(entries []WeightEntry) *WeightStats {
	if len(entries) == 0 {
		return nil
	}
	var sum float64
	for _, e := range entries {
		sum += e.Weight
	}
	stats := &WeightStats{
		Latest:  entries[len(entries)-1].Weight,
		Average: sum / float64(len(entries)),
	}
	if len(entries) > 1 {
		change := entries[len(entries)-1].Weight - entries[0].Weight
		stats.Change = &change
	}
	return stats
}

// PressureStats summarizes a blood-pressure series. Averages are
// rounded to the nearest mmHg for display.
type PressureStats struct {
	AvgSystolic  int `json:"avgSystolic"`
	AvgDiastolic int `json:"avgDiastolic"`
}

// SummarizePressure computes summary stats for a blood-pressure
// series. Returns nil for an empty series.
func SummarizePressure(entries []PressureEntry) *PressureStats {
	if len(entries) == 0 {
		return nil
	}
	var sumSys, sumDia int
	for _, e := range entries {
		sumSys += e.Systolic
		sumDia += e.Diastolic
	}
	n := float64(len(entries))
	return &PressureStats{
		AvgSystolic:  int(math.Round(float64(sumSys) / n)),
		AvgDiastolic: int(math.Round(float64(sumDia) / n)),
	}
}

// RollingTrend computes a moving average over the weight series,
// index-aligned with the input. Positions with fewer than window
// entries of history are nil so chart series keep their alignment.
func RollingTrend(entries []WeightEntry, window int) []*float64 {
	trend := make([]*float64, len(entries))
	if window <= 0 {
		return trend
	}
	for i := window - 1; i < len(entries); i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += entries[j].Weight
		}
		mean := sum / float64(window)
		trend[i] = &mean
	}
	return trend
}

// WeightAxisRange computes chart bounds for the weight series: the
// lower bound keeps the target line visible even when all observed
// weights sit above it. Returns nil for an empty series.
func WeightAxisRange(entries []WeightEntry, target float64) *Range {
	if len(entries) == 0 {
		return nil
	}
	minW, maxW := entries[0].Weight, entries[0].Weight
	for _, e := range entries[1:] {
		minW = math.Min(minW, e.Weight)
		maxW = math.Max(maxW, e.Weight)
	}
	return &Range{Min: math.Min(minW, target) - 10, Max: maxW + 10}
}

// BodyFatAxisRange computes chart bounds for the body-fat series.
// Entries without a body-fat reading are excluded; returns nil when no
// entry carries one.
func BodyFatAxisRange(entries []WeightEntry, minTarget, maxTarget float64) *Range {
	var minBF, maxBF float64
	found := false
	for _, e := range entries {
		if e.BodyFat == nil {
			continue
		}
		if !found {
			minBF, maxBF = *e.BodyFat, *e.BodyFat
			found = true
			continue
		}
		minBF = math.Min(minBF, *e.BodyFat)
		maxBF = math.Max(maxBF, *e.BodyFat)
	}
	if !found {
		return nil
	}
	return &Range{Min: math.Min(minBF, minTarget) - 5, Max: maxBF + 5}
}

// PressureAxisRange computes shared chart bounds for both pressure
// series: low enough for the diastolic target band, high enough for
// the largest systolic reading. Returns nil for an empty series.
func PressureAxisRange(entries []PressureEntry, diastolicTarget float64) *Range {
	if len(entries) == 0 {
		return nil
	}
	minDia := float64(entries[0].Diastolic)
	maxSys := float64(entries[0].Systolic)
	for _, e := range entries[1:] {
		minDia = math.Min(minDia, float64(e.Diastolic))
		maxSys = math.Max(maxSys, float64(e.Systolic))
	}
	return &Range{Min: math.Min(minDia, diastolicTarget) - 5, Max: maxSys + 10}
}
