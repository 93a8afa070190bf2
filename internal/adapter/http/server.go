package adapthttp

import (
	"net/http"

	"healthlog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weight   *app.WeightService
	pressure *app.PressureService
	charts   *app.ChartsService
	webDir   string
}

// New creates a Server wired to the given application services.
func New(ws *app.WeightService, ps *app.PressureService, cs *app.ChartsService, webDir string) *Server {
	return &Server{weight: ws, pressure: ps, charts: cs, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/weight", s.handleWeight)
	api.HandleFunc("/weight/log", s.handleWeightLog)

	api.HandleFunc("/pressure", s.handlePressure)
	api.HandleFunc("/pressure/log", s.handlePressureLog)

	api.HandleFunc("/export/weight_log.csv", s.handleWeightExport)
	api.HandleFunc("/export/blood_pressure_log.csv", s.handlePressureExport)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
