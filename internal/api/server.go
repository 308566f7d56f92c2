// Package api serves the JSON endpoints the companion UI reads: current
// conditions and scores, hydration and meal plans, activity suitability,
// and the worship agenda.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rizaldy/temanramadhan/internal/advisor"
	"github.com/rizaldy/temanramadhan/internal/ibadah"
	"github.com/rizaldy/temanramadhan/internal/meal"
	"github.com/rizaldy/temanramadhan/internal/metrics"
	"github.com/rizaldy/temanramadhan/internal/store"
)

type Server struct {
	store         *store.Store
	catalog       meal.Catalog
	agenda        []ibadah.Item
	port          string
	loc           *time.Location
	defaultWeight float64
}

func NewServer(store *store.Store, port string, loc *time.Location) *Server {
	return &Server{
		store:         store,
		catalog:       meal.DefaultCatalog(),
		agenda:        ibadah.DefaultSchedule(),
		port:          port,
		loc:           loc,
		defaultWeight: advisor.DefaultBodyWeightKg,
	}
}

// SetDefaultBodyWeight overrides the body weight used when a request does
// not carry one. Non-positive values keep the default.
func (s *Server) SetDefaultBodyWeight(kg float64) {
	if kg > 0 {
		s.defaultWeight = kg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/conditions", s.instrument("conditions", s.handleConditions))
	mux.HandleFunc("/api/hydration", s.instrument("hydration", s.handleHydration))
	mux.HandleFunc("/api/activities", s.instrument("activities", s.handleActivities))
	mux.HandleFunc("/api/meals/sahur", s.instrument("meals_sahur", s.handleMealsSahur))
	mux.HandleFunc("/api/meals/iftar", s.instrument("meals_iftar", s.handleMealsIftar))
	mux.HandleFunc("/api/ibadah/agenda", s.instrument("ibadah_agenda", s.handleIbadahAgenda))
	mux.HandleFunc("/api/ibadah/upcoming", s.instrument("ibadah_upcoming", s.handleIbadahUpcoming))
	mux.HandleFunc("/api/history/scores", s.instrument("history_scores", s.handleHistoryScores))
	mux.HandleFunc("/healthz", s.instrument("healthz", s.handleHealthz))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// statusRecorder captures the response code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		metrics.RequestsTotal.WithLabelValues(name, fmt.Sprint(rec.status)).Inc()
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
