package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthStatus struct {
	Status            string   `json:"status"`
	LastReadingAt     string   `json:"lastReadingAt,omitempty"`
	ReadingAgeMinutes int      `json:"readingAgeMinutes"`
	ReadingStale      bool     `json:"readingStale"`
	PrayerTimesToday  bool     `json:"prayerTimesToday"`
	Errors            []string `json:"errors,omitempty"`
}

// staleThreshold is twice the weather ingest cadence.
const staleThreshold = 60 * time.Minute

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{Status: "ok", ReadingAgeMinutes: -1, ReadingStale: true}
	now := time.Now()

	snap, err := s.store.LatestReading()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
		return
	}
	if snap != nil {
		health.LastReadingAt = snap.ObservedAt.Format(time.RFC3339)
		health.ReadingAgeMinutes = int(now.Sub(snap.ObservedAt).Minutes())
		health.ReadingStale = now.Sub(snap.ObservedAt) > staleThreshold
	}

	if pt, err := s.store.PrayerTimesOn(now.In(s.loc)); err != nil {
		health.Errors = append(health.Errors, "prayer_times: "+err.Error())
	} else {
		health.PrayerTimesToday = pt != nil
	}

	if failures, err := s.store.GetRecentIngestErrors(5); err != nil {
		health.Errors = append(health.Errors, "ingest_runs: "+err.Error())
	} else {
		for _, f := range failures {
			if now.Sub(f.StartedAt) < staleThreshold && f.ErrorMessage.Valid {
				health.Errors = append(health.Errors, f.Source+": "+f.ErrorMessage.String)
			}
		}
	}

	if health.ReadingStale || len(health.Errors) > 0 {
		health.Status = "degraded"
	}

	writeJSON(w, health)
}
