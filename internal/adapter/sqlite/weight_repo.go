package sqlite

import (
	"context"
	"database/sql"

	"healthlog/internal/domain"
)

// AddWeight inserts a new weight entry and returns the stored record.
func (d *DB) AddWeight(ctx context.Context, date string, weight float64, bodyFat *float64, notes string) (*domain.WeightEntry, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO weights(date, weight, body_fat, notes) VALUES(?, ?, ?, ?);",
		date, weight, bodyFat, notes,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.WeightEntry{ID: id, Date: date, Weight: weight, BodyFat: bodyFat, Notes: notes}, nil
}

// ListWeights returns all weight entries ordered by date ascending,
// insertion order breaking ties.
func (d *DB) ListWeights(ctx context.Context) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, weight, body_fat, notes FROM weights ORDER BY date ASC, id ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WeightEntry, 0)
	for rows.Next() {
		var e domain.WeightEntry
		var bodyFat sql.NullFloat64
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &e.Weight, &bodyFat, &notes); err != nil {
			return nil, err
		}
		if bodyFat.Valid {
			e.BodyFat = &bodyFat.Float64
		}
		e.Notes = notes.String
		out = append(out, e)
	}
	return out, rows.Err()
}
