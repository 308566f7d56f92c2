package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rizaldy/temanramadhan/internal/advisor"
	"github.com/rizaldy/temanramadhan/internal/ibadah"
	"github.com/rizaldy/temanramadhan/internal/models"
)

// Fallbacks when the prayer-times ingest has not landed yet.
const (
	defaultImsak   = "04:30"
	defaultMaghrib = "18:00"
)

// marineFreshness is how old a wave reading may be before the scorers fall
// back to the wind-derived estimate. Matches the scheduler's cutoff so the
// live endpoints agree with the stored score history.
const marineFreshness = 3 * time.Hour

var errNoReadings = errors.New("no weather readings yet")

// signals bundles the latest stored observations into the inputs the
// scorers expect.
type signals struct {
	snap         models.WeatherSnapshot
	series       models.HourlySeries
	heatIndexC   float64
	precipProb   float64
	wave         float64
	waveObserved bool
}

func (s *Server) currentSignals() (*signals, error) {
	snap, err := s.store.LatestReading()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, errNoReadings
	}

	sig := &signals{snap: *snap}
	sig.heatIndexC = advisor.HeatIndex(snap.TemperatureC, snap.RelativeHumidityPct)

	series, err := s.store.LatestHourlySeries()
	if err != nil {
		return nil, err
	}
	sig.series = series
	sig.precipProb = series.PrecipProbAt(time.Now().In(s.loc).Hour(), 0)

	sig.wave = advisor.EstimateWaveHeight(snap.WindSpeedKmh)
	if m, err := s.store.LatestMarineReading(); err != nil {
		return nil, err
	} else if m != nil && time.Since(m.ObservedAt) < marineFreshness {
		sig.wave = m.WaveHeightM
		sig.waveObserved = true
	}
	return sig, nil
}

func (s *Server) signalsOrError(w http.ResponseWriter) (*signals, bool) {
	sig, err := s.currentSignals()
	if err == nil {
		return sig, true
	}
	if errors.Is(err, errNoReadings) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	return nil, false
}

type ConditionsResponse struct {
	ObservedAt   time.Time                   `json:"observedAt"`
	TemperatureC float64                     `json:"temperatureC"`
	HumidityPct  float64                     `json:"humidityPct"`
	WindSpeedKmh float64                     `json:"windSpeedKmh"`
	HeatIndexC   float64                     `json:"heatIndexC"`
	Weather      advisor.WeatherCodeInfo     `json:"weather"`
	Hydration    advisor.HydrationPlan       `json:"hydration"`
	Laundry      advisor.LaundryResult       `json:"laundry"`
	Snorkeling   advisor.SnorkelingResult    `json:"snorkeling"`
	Mosque       advisor.MosqueComfortResult `json:"mosque"`
	PrayerTimes  *models.PrayerTimes         `json:"prayerTimes,omitempty"`
}

func (s *Server) handleConditions(w http.ResponseWriter, r *http.Request) {
	sig, ok := s.signalsOrError(w)
	if !ok {
		return
	}

	resp := ConditionsResponse{
		ObservedAt:   sig.snap.ObservedAt,
		TemperatureC: sig.snap.TemperatureC,
		HumidityPct:  sig.snap.RelativeHumidityPct,
		WindSpeedKmh: sig.snap.WindSpeedKmh,
		HeatIndexC:   sig.heatIndexC,
		Weather:      advisor.DescribeWeatherCode(sig.snap.WeatherCode),
		Hydration:    advisor.PlanHydration(sig.heatIndexC, s.defaultWeight, true),
		Laundry: advisor.ScoreLaundry(sig.snap.TemperatureC, sig.snap.RelativeHumidityPct,
			sig.snap.WindSpeedKmh, sig.precipProb, sig.snap.CloudCoverPct),
		Snorkeling: advisor.ScoreSnorkeling(sig.wave, sig.snap.WindSpeedKmh,
			sig.snap.CloudCoverPct, sig.precipProb),
		Mosque: advisor.ScoreMosqueComfort(sig.snap.TemperatureC,
			sig.snap.RelativeHumidityPct, sig.precipProb),
	}

	if pt, err := s.store.PrayerTimesOn(time.Now().In(s.loc)); err == nil && pt != nil {
		resp.PrayerTimes = pt
	}

	writeJSON(w, resp)
}

func (s *Server) handleHydration(w http.ResponseWriter, r *http.Request) {
	weight := s.defaultWeight
	if v := r.URL.Query().Get("weight"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid weight", http.StatusBadRequest)
			return
		}
		weight = parsed
	}
	fasting := r.URL.Query().Get("fasting") != "false"

	sig, ok := s.signalsOrError(w)
	if !ok {
		return
	}
	writeJSON(w, advisor.PlanHydration(sig.heatIndexC, weight, fasting))
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	surface := advisor.Surface(r.URL.Query().Get("surface"))
	switch surface {
	case "":
		surface = advisor.SurfaceNgabuburit
	case advisor.SurfaceNgabuburit, advisor.SurfaceTourism:
	default:
		http.Error(w, "unknown surface", http.StatusBadRequest)
		return
	}

	sig, ok := s.signalsOrError(w)
	if !ok {
		return
	}

	asig := advisor.ActivitySignals{
		TempC:         sig.snap.TemperatureC,
		HeatIndexC:    sig.heatIndexC,
		PrecipProbPct: sig.precipProb,
		WindKmh:       sig.snap.WindSpeedKmh,
		CloudCoverPct: sig.snap.CloudCoverPct,
		WaveHeightM:   sig.wave,
		PrecipProbAt: func(hour int) float64 {
			return sig.series.PrecipProbAt(hour, 0)
		},
	}

	activities := advisor.SurfaceActivities(surface)
	results := make([]advisor.ActivityResult, 0, len(activities))
	for _, a := range activities {
		results = append(results, advisor.ScoreActivity(a, asig))
	}
	writeJSON(w, results)
}

func (s *Server) handleMealsSahur(w http.ResponseWriter, r *http.Request) {
	sig, ok := s.signalsOrError(w)
	if !ok {
		return
	}

	now := time.Now().In(s.loc)
	imsak := defaultImsak
	if pt, err := s.store.PrayerTimesOn(now); err == nil && pt != nil && pt.Imsak != "" {
		imsak = pt.Imsak
	}

	plan, err := s.catalog.PlanSahur(now, imsak,
		sig.snap.TemperatureC, sig.heatIndexC, advisor.IsRainyCode(sig.snap.WeatherCode))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, plan)
}

func (s *Server) handleMealsIftar(w http.ResponseWriter, r *http.Request) {
	prep := 30
	if v := r.URL.Query().Get("prep"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid prep", http.StatusBadRequest)
			return
		}
		prep = parsed
	}

	sig, ok := s.signalsOrError(w)
	if !ok {
		return
	}

	plan := s.catalog.PlanIftar(prep, sig.snap.TemperatureC, sig.heatIndexC,
		advisor.IsRainyCode(sig.snap.WeatherCode))
	writeJSON(w, plan)
}

func (s *Server) handleIbadahAgenda(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.agenda)
}

func (s *Server) handleIbadahUpcoming(w http.ResponseWriter, r *http.Request) {
	window := ibadah.DefaultWindowMinutes
	if v := r.URL.Query().Get("window"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
		window = parsed
	}

	now := time.Now().In(s.loc)
	items := ibadah.NextWindow(s.agenda, now, window)
	if items == nil {
		items = []ibadah.Item{}
	}
	writeJSON(w, items)
}

func (s *Server) handleHistoryScores(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if v := r.URL.Query().Get("hours"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 24*30 {
			http.Error(w, "invalid hours", http.StatusBadRequest)
			return
		}
		hours = parsed
	}

	records, err := s.store.ScoreHistory(time.Now().UTC().Add(-time.Duration(hours) * time.Hour))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.ScoreRecord{}
	}
	writeJSON(w, records)
}
