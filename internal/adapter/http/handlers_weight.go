package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"healthlog/internal/domain"
)

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		chart, err := s.charts.GetWeightChart(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, chart)

	case http.MethodPost:
		var body struct {
			Date    string  `json:"date"`
			Weight  float64 `json:"weight"`
			BodyFat float64 `json:"bodyFat"`
			Notes   string  `json:"notes"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if body.Date == "" {
			body.Date = localDayString(time.Now())
		}
		entry, err := s.weight.RecordWeight(ctx, body.Date, body.Weight, body.BodyFat, body.Notes)
		if errors.Is(err, domain.ErrValidation) {
			writeWarning(w, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeightLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	entries, err := s.weight.ListWeights(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	// Table rows are displayed newest first.
	rows := make([]domain.WeightEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		rows = append(rows, entries[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": rows})
}
