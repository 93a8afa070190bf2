// Package postgres implements the repository ports over PostgreSQL,
// for deployments that prefer a server database to the local file.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"healthlog/internal/domain"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.PressureRepository = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS weights (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, weight DOUBLE PRECISION NOT NULL CHECK(weight > 0), body_fat DOUBLE PRECISION, notes TEXT);",
		"CREATE INDEX IF NOT EXISTS idx_weights_date ON weights(date);",
		"CREATE TABLE IF NOT EXISTS blood_pressure (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, systolic INTEGER NOT NULL CHECK(systolic > 0), diastolic INTEGER NOT NULL CHECK(diastolic > 0), notes TEXT);",
		"CREATE INDEX IF NOT EXISTS idx_blood_pressure_date ON blood_pressure(date);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
