package sqlite

import (
	"context"
	"database/sql"

	"healthlog/internal/domain"
)

// AddPressure inserts a new blood-pressure reading and returns the
// stored record.
func (d *DB) AddPressure(ctx context.Context, date string, systolic, diastolic int, notes string) (*domain.PressureEntry, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO blood_pressure(date, systolic, diastolic, notes) VALUES(?, ?, ?, ?);",
		date, systolic, diastolic, notes,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.PressureEntry{ID: id, Date: date, Systolic: systolic, Diastolic: diastolic, Notes: notes}, nil
}

// ListPressure returns all blood-pressure entries ordered by date
// ascending, insertion order breaking ties.
func (d *DB) ListPressure(ctx context.Context) ([]domain.PressureEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, systolic, diastolic, notes FROM blood_pressure ORDER BY date ASC, id ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PressureEntry, 0)
	for rows.Next() {
		var e domain.PressureEntry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &e.Systolic, &e.Diastolic, &notes); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		out = append(out, e)
	}
	return out, rows.Err()
}
