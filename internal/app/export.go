package app

import (
	"encoding/csv"
	"io"
	"strconv"

	"healthlog/internal/domain"
)

// WriteWeightCSV writes the weight log as CSV, newest entry first,
// with the dashboard's display column names as the header row.
func WriteWeightCSV(w io.Writer, entries []domain.WeightEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Weight", "Body Fat %", "Notes"}); err != nil {
		return err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		bodyFat := ""
		if e.BodyFat != nil {
			bodyFat = strconv.FormatFloat(*e.BodyFat, 'f', -1, 64)
		}
		row := []string{e.Date, strconv.FormatFloat(e.Weight, 'f', -1, 64), bodyFat, e.Notes}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePressureCSV writes the blood-pressure log as CSV, newest entry
// first.
func WritePressureCSV(w io.Writer, entries []domain.PressureEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Systolic", "Diastolic", "Notes"}); err != nil {
		return err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		row := []string{e.Date, strconv.Itoa(e.Systolic), strconv.Itoa(e.Diastolic), e.Notes}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
