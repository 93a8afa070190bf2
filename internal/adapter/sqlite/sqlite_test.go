package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpen_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	db, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dataDir, DBFileName)); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestWeightRoundTripAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()
	ctx := context.Background()

	db, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	bf := 17.5
	if _, err := db.AddWeight(ctx, "2026-03-02", 80.0, &bf, "after run"); err != nil {
		t.Fatalf("AddWeight: %v", err)
	}
	if _, err := db.AddWeight(ctx, "2026-03-01", 81.5, nil, ""); err != nil {
		t.Fatalf("AddWeight: %v", err)
	}

	before, err := db.ListWeights(ctx)
	if err != nil {
		t.Fatalf("ListWeights: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = Open(dataDir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	after, err := db.ListWeights(ctx)
	if err != nil {
		t.Fatalf("ListWeights after reopen: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("sequence changed across restart:\nbefore: %+v\nafter:  %+v", before, after)
	}
	if len(after) != 2 || after[0].Date != "2026-03-01" || after[1].Date != "2026-03-02" {
		t.Errorf("entries not ordered by date: %+v", after)
	}
	if after[1].BodyFat == nil || *after[1].BodyFat != 17.5 {
		t.Errorf("expected body fat 17.5, got %v", after[1].BodyFat)
	}
	if after[0].BodyFat != nil {
		t.Errorf("expected absent body fat, got %v", *after[0].BodyFat)
	}
}

func TestWeightIDsIncreaseWithInsertionOrder(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	var lastID int64
	for _, date := range []string{"2026-03-03", "2026-03-01", "2026-03-02"} {
		e, err := db.AddWeight(ctx, date, 80, nil, "")
		if err != nil {
			t.Fatalf("AddWeight: %v", err)
		}
		if e.ID <= lastID {
			t.Fatalf("id %d not greater than previous %d", e.ID, lastID)
		}
		lastID = e.ID
	}

	entries, err := db.ListWeights(ctx)
	if err != nil {
		t.Fatalf("ListWeights: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date < entries[i-1].Date {
			t.Fatalf("entries not sorted by date: %+v", entries)
		}
	}
}

func TestPressureRoundTripAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()
	ctx := context.Background()

	db, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := db.AddPressure(ctx, "2026-03-01", 118, 76, "morning"); err != nil {
		t.Fatalf("AddPressure: %v", err)
	}
	if _, err := db.AddPressure(ctx, "2026-03-01", 121, 79, "evening"); err != nil {
		t.Fatalf("AddPressure: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = Open(dataDir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	entries, err := db.ListPressure(ctx)
	if err != nil {
		t.Fatalf("ListPressure: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Same date: insertion order decides.
	if entries[0].Notes != "morning" || entries[1].Notes != "evening" {
		t.Errorf("same-date entries must keep insertion order: %+v", entries)
	}
}
