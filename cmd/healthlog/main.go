package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	adapthttp "healthlog/internal/adapter/http"
	"healthlog/internal/adapter/postgres"
	"healthlog/internal/adapter/sqlite"
	"healthlog/internal/app"
	"healthlog/internal/domain"
)

type store interface {
	domain.WeightRepository
	domain.PressureRepository
	io.Closer
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")
	dataDir := env("DATA_DIR", "data")

	var (
		db  store
		err error
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err = postgres.Open(connStr)
	} else {
		db, err = sqlite.Open(dataDir)
	}
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	weightSvc := app.NewWeightService(db)
	pressureSvc := app.NewPressureService(db)
	chartsSvc := app.NewChartsService(db, db)

	h := adapthttp.New(weightSvc, pressureSvc, chartsSvc, webDir).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
