package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rizaldy/temanramadhan/internal/api"
	"github.com/rizaldy/temanramadhan/internal/models"
	"github.com/rizaldy/temanramadhan/internal/store"

	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) (*store.Store, *time.Location) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	loc := time.UTC
	s := store.New(db, loc)
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}
	return s, loc
}

// seedConditions inserts one plausible hot-afternoon reading plus the
// hourly series the scorers read.
func seedConditions(t *testing.T, s *store.Store) {
	t.Helper()

	err := s.InsertReading(models.WeatherSnapshot{
		ObservedAt:          time.Now().Add(-10 * time.Minute),
		TemperatureC:        33,
		RelativeHumidityPct: 70,
		WindSpeedKmh:        12,
		CloudCoverPct:       40,
		WeatherCode:         2,
	})
	if err != nil {
		t.Fatal(err)
	}

	series := models.HourlySeries{FetchedAt: time.Now().UTC()}
	for i := 0; i < 48; i++ {
		series.TemperatureC = append(series.TemperatureC, 30)
		series.RelativeHumidityPct = append(series.RelativeHumidityPct, 75)
		series.PrecipProbPct = append(series.PrecipProbPct, 20)
		series.PrecipitationMm = append(series.PrecipitationMm, 0)
		series.WeatherCode = append(series.WeatherCode, 2)
		series.CloudCoverPct = append(series.CloudCoverPct, 40)
	}
	if err := s.ReplaceHourlySeries(series); err != nil {
		t.Fatal(err)
	}
}

func get(t *testing.T, srv *api.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestConditionsEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	seedConditions(t, s)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/api/conditions")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp api.ConditionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TemperatureC != 33 {
		t.Errorf("TemperatureC = %v, want 33", resp.TemperatureC)
	}
	// 33C at 70% humidity is well into heat-index territory.
	if resp.HeatIndexC <= 33 {
		t.Errorf("HeatIndexC = %v, want > 33", resp.HeatIndexC)
	}
	if resp.Laundry.Score < 0 || resp.Laundry.Score > 100 {
		t.Errorf("Laundry.Score = %d out of range", resp.Laundry.Score)
	}
	if resp.Mosque.Comfort == "" {
		t.Error("Mosque.Comfort empty")
	}
	if !resp.Hydration.Fasting {
		t.Error("conditions hydration should default to fasting")
	}
}

func TestConditionsMarineFreshness(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	seedConditions(t, s)
	srv := api.NewServer(s, "8080", loc)

	decode := func(w *httptest.ResponseRecorder) api.ConditionsResponse {
		t.Helper()
		if w.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp api.ConditionsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// A stale wave reading must not override the wind-derived estimate:
	// 12 km/h wind estimates 0.8 m, which scores EXCELLENT here.
	err := s.InsertMarineReading(models.MarineSnapshot{
		ObservedAt:  time.Now().Add(-5 * time.Hour),
		WaveHeightM: 5.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	resp := decode(get(t, srv, "/api/conditions"))
	if resp.Snorkeling.Status != "EXCELLENT" {
		t.Errorf("stale reading: Snorkeling.Status = %q, want EXCELLENT from wind estimate",
			resp.Snorkeling.Status)
	}

	// A fresh reading takes over.
	err = s.InsertMarineReading(models.MarineSnapshot{
		ObservedAt:  time.Now().Add(-10 * time.Minute),
		WaveHeightM: 5.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	resp = decode(get(t, srv, "/api/conditions"))
	if resp.Snorkeling.Status == "EXCELLENT" {
		t.Errorf("fresh 5m wave still scored %q; reading not applied", resp.Snorkeling.Status)
	}
	if resp.Snorkeling.WaveStatus != "Tinggi" {
		t.Errorf("fresh 5m wave: WaveStatus = %q, want Tinggi", resp.Snorkeling.WaveStatus)
	}
}

func TestConditionsEndpoint_NoData(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/api/conditions")
	if w.Code != 503 {
		t.Fatalf("expected 503 with empty store, got %d", w.Code)
	}
}

func TestHydrationEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	seedConditions(t, s)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/api/hydration?weight=80")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan struct {
		TotalNeededMl int    `json:"totalNeededMl"`
		Pattern       string `json:"pattern"`
		Fasting       bool   `json:"fasting"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatal(err)
	}
	if plan.TotalNeededMl <= 0 {
		t.Errorf("TotalNeededMl = %d, want > 0", plan.TotalNeededMl)
	}
	if plan.Pattern == "" {
		t.Error("Pattern empty for fasting plan")
	}
	if !plan.Fasting {
		t.Error("Fasting should default to true")
	}

	if w := get(t, srv, "/api/hydration?weight=abc"); w.Code != 400 {
		t.Errorf("bad weight: expected 400, got %d", w.Code)
	}
	if w := get(t, srv, "/api/hydration?weight=-5"); w.Code != 400 {
		t.Errorf("negative weight: expected 400, got %d", w.Code)
	}
}

func TestActivitiesEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	seedConditions(t, s)
	srv := api.NewServer(s, "8080", loc)

	tests := []struct {
		query string
		count int
	}{
		{"", 4},
		{"?surface=ngabuburit", 4},
		{"?surface=tourism", 4},
	}
	for _, tt := range tests {
		w := get(t, srv, "/api/activities"+tt.query)
		if w.Code != 200 {
			t.Fatalf("%q: expected 200, got %d: %s", tt.query, w.Code, w.Body.String())
		}
		var results []struct {
			Activity string   `json:"activity"`
			Score    int      `json:"score"`
			Tips     []string `json:"tips"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
			t.Fatal(err)
		}
		if len(results) != tt.count {
			t.Errorf("%q: got %d activities, want %d", tt.query, len(results), tt.count)
		}
		for _, res := range results {
			if res.Score < 0 || res.Score > 100 {
				t.Errorf("%q %s: score %d out of range", tt.query, res.Activity, res.Score)
			}
		}
	}

	if w := get(t, srv, "/api/activities?surface=mall"); w.Code != 400 {
		t.Errorf("unknown surface: expected 400, got %d", w.Code)
	}
}

func TestMealsEndpoints(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	seedConditions(t, s)

	err := s.UpsertPrayerTimes(models.PrayerTimes{
		Date:    time.Now().In(loc).Truncate(24 * time.Hour),
		Imsak:   "04:38",
		Subuh:   "04:48",
		Maghrib: "18:21",
		Isya:    "19:31",
	})
	if err != nil {
		t.Fatal(err)
	}

	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/api/meals/sahur")
	if w.Code != 200 {
		t.Fatalf("sahur: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var sahur struct {
		ImsakTime       string `json:"imsakTime"`
		Recommendations []json.RawMessage
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sahur); err != nil {
		t.Fatal(err)
	}
	if sahur.ImsakTime != "04:38" {
		t.Errorf("ImsakTime = %q, want stored 04:38", sahur.ImsakTime)
	}

	w = get(t, srv, "/api/meals/iftar?prep=30")
	if w.Code != 200 {
		t.Fatalf("iftar: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Tarawih") {
		t.Error("iftar plan missing tarawih advice")
	}

	if w := get(t, srv, "/api/meals/iftar?prep=x"); w.Code != 400 {
		t.Errorf("bad prep: expected 400, got %d", w.Code)
	}
}

func TestIbadahEndpoints(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/api/ibadah/agenda")
	if w.Code != 200 {
		t.Fatalf("agenda: expected 200, got %d", w.Code)
	}
	var agenda []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &agenda); err != nil {
		t.Fatal(err)
	}
	if len(agenda) < 30 {
		t.Errorf("agenda has %d items, want the full merged timeline", len(agenda))
	}

	w = get(t, srv, "/api/ibadah/upcoming?window=120")
	if w.Code != 200 {
		t.Fatalf("upcoming: expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(w.Body.String()), "[") {
		t.Error("upcoming should always return a JSON array")
	}

	if w := get(t, srv, "/api/ibadah/upcoming?window=0"); w.Code != 400 {
		t.Errorf("zero window: expected 400, got %d", w.Code)
	}
}

func TestHistoryScoresEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	srv := api.NewServer(s, "8080", loc)

	if _, err := s.InsertScoreRecord(models.ScoreRecord{
		RecordedAt:       time.Now().UTC().Add(-time.Hour),
		HeatIndexC:       38.2,
		LaundryScore:     80,
		LaundryStatus:    "SEMPURNA",
		SnorkelingScore:  65,
		SnorkelingStatus: "GOOD",
		MosqueComfort:    "PENGAP",
	}); err != nil {
		t.Fatal(err)
	}

	w := get(t, srv, "/api/history/scores?hours=6")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var records []struct {
		HeatIndexC    float64 `json:"heatIndexC"`
		LaundryStatus string  `json:"laundryStatus"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].LaundryStatus != "SEMPURNA" {
		t.Errorf("LaundryStatus = %q", records[0].LaundryStatus)
	}

	// Old records fall outside the window.
	if w := get(t, srv, "/api/history/scores?hours=x"); w.Code != 400 {
		t.Errorf("bad hours: expected 400, got %d", w.Code)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/healthz")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var health struct {
		Status       string `json:"status"`
		ReadingStale bool   `json:"readingStale"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatal(err)
	}
	// Empty store: degraded but serving.
	if health.Status != "degraded" {
		t.Errorf("Status = %q, want degraded with empty store", health.Status)
	}
	if !health.ReadingStale {
		t.Error("ReadingStale should be true with no readings")
	}

	seedConditions(t, s)
	w = get(t, srv, "/healthz")
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatal(err)
	}
	if health.ReadingStale {
		t.Error("ReadingStale should be false right after a reading")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s, loc := setupTestStore(t)
	srv := api.NewServer(s, "8080", loc)

	w := get(t, srv, "/metrics")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected Go runtime metrics in exposition")
	}
}
