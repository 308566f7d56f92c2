package ingest

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rizaldy/temanramadhan/internal/advisor"
	"github.com/rizaldy/temanramadhan/internal/metrics"
	"github.com/rizaldy/temanramadhan/internal/models"
	"github.com/rizaldy/temanramadhan/internal/store"
)

// marineFreshness is how old a wave reading may be before the scorer falls
// back to the wind-derived estimate.
const marineFreshness = 3 * time.Hour

const payloadRetentionDays = 30

type Scheduler struct {
	store         *store.Store
	meteo         *OpenMeteoClient
	aladhan       *AladhanClient
	loc           *time.Location
	weatherEvery  time.Duration
	marineEvery   time.Duration
	marineEnabled bool
}

func NewScheduler(st *store.Store, meteo *OpenMeteoClient, aladhan *AladhanClient, loc *time.Location, marineEnabled bool) *Scheduler {
	return &Scheduler{
		store:         st,
		meteo:         meteo,
		aladhan:       aladhan,
		loc:           loc,
		weatherEvery:  30 * time.Minute,
		marineEvery:   time.Hour,
		marineEnabled: marineEnabled,
	}
}

// SetIntervals overrides the default weather and marine polling cadences.
// Zero values keep the defaults.
func (s *Scheduler) SetIntervals(weatherEvery, marineEvery time.Duration) {
	if weatherEvery > 0 {
		s.weatherEvery = weatherEvery
	}
	if marineEvery > 0 {
		s.marineEvery = marineEvery
	}
}

// IngestOnce runs every fetch a full cycle would run. Used at startup and
// by the --once flag.
func (s *Scheduler) IngestOnce() {
	s.ingestWeather()
	s.ingestMarine()
	s.refreshPrayerTimes()
}

// Run ingests once at startup, then keeps the tickers and the daily cron
// jobs going until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.IngestOnce()

	weatherTicker := time.NewTicker(s.weatherEvery)
	marineTicker := time.NewTicker(s.marineEvery)
	defer weatherTicker.Stop()
	defer marineTicker.Stop()

	// Prayer times change once a day; refresh them after midnight and
	// trim the raw-payload archive in the quiet hours.
	c := cron.New(cron.WithLocation(s.loc))
	c.AddFunc("30 1 * * *", s.refreshPrayerTimes)
	c.AddFunc("0 2 * * *", s.cleanupPayloads)
	c.Start()
	defer c.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("scheduler: shutting down")
			return
		case <-weatherTicker.C:
			s.ingestWeather()
		case <-marineTicker.C:
			s.ingestMarine()
		}
	}
}

func (s *Scheduler) ingestWeather() {
	log.Println("scheduler: ingesting weather")
	run, _ := s.store.StartIngestRun("open-meteo", "v1/forecast")

	snap, series, rawBody, fetchResult, err := s.meteo.FetchForecast()
	finishRun(run, fetchResult, err)

	if len(rawBody) > 0 && run != nil {
		if _, err := s.store.StoreRawPayload(&run.ID, "open-meteo", "v1/forecast", []byte(rawBody)); err != nil {
			log.Printf("scheduler: store raw payload: %v", err)
		}
	}

	if err != nil {
		log.Printf("scheduler: fetch forecast: %v", err)
		s.completeRun(run)
		return
	}

	if flags := ValidateSnapshot(snap); len(flags) > 0 {
		log.Printf("scheduler: reading quality flags: %s", QualityFlagsToJSON(flags))
	}

	stored := 0
	if err := s.store.InsertReading(snap); err != nil {
		log.Printf("scheduler: insert reading: %v", err)
	} else {
		stored++
	}
	if err := s.store.ReplaceHourlySeries(series); err != nil {
		log.Printf("scheduler: store hourly series: %v", err)
	} else {
		stored += series.Len()
	}
	if run != nil {
		run.RecordsStored = sql.NullInt64{Int64: int64(stored), Valid: true}
	}
	metrics.ReadingsIngested.WithLabelValues("open-meteo").Inc()

	s.recordScores(snap)
	s.completeRun(run)
}

func (s *Scheduler) ingestMarine() {
	if !s.marineEnabled {
		return
	}

	log.Println("scheduler: ingesting marine")
	run, _ := s.store.StartIngestRun("open-meteo-marine", "v1/marine")

	m, rawBody, fetchResult, err := s.meteo.FetchMarine()
	finishRun(run, fetchResult, err)

	if len(rawBody) > 0 && run != nil {
		if _, err := s.store.StoreRawPayload(&run.ID, "open-meteo-marine", "v1/marine", []byte(rawBody)); err != nil {
			log.Printf("scheduler: store marine raw payload: %v", err)
		}
	}

	if err != nil {
		log.Printf("scheduler: fetch marine: %v", err)
		s.completeRun(run)
		return
	}

	if flags := ValidateMarine(m); len(flags) > 0 {
		log.Printf("scheduler: marine quality flags: %s", QualityFlagsToJSON(flags))
	}

	if err := s.store.InsertMarineReading(m); err != nil {
		log.Printf("scheduler: insert marine reading: %v", err)
	} else if run != nil {
		run.RecordsStored = sql.NullInt64{Int64: 1, Valid: true}
	}
	metrics.ReadingsIngested.WithLabelValues("open-meteo-marine").Inc()

	s.completeRun(run)
}

func (s *Scheduler) refreshPrayerTimes() {
	if s.aladhan == nil {
		return
	}

	log.Println("scheduler: refreshing prayer times")
	// Today and tomorrow, so the sahur countdown can cross midnight.
	now := time.Now().In(s.loc)
	for _, date := range []time.Time{now, now.AddDate(0, 0, 1)} {
		run, _ := s.store.StartIngestRun("aladhan", "v1/timingsByCity")

		pt, rawBody, fetchResult, err := s.aladhan.FetchTimings(date)
		finishRun(run, fetchResult, err)

		if len(rawBody) > 0 && run != nil {
			if _, err := s.store.StoreRawPayload(&run.ID, "aladhan", "v1/timingsByCity", []byte(rawBody)); err != nil {
				log.Printf("scheduler: store aladhan raw payload: %v", err)
			}
		}

		if err != nil {
			log.Printf("scheduler: fetch prayer times for %s: %v", date.Format("2006-01-02"), err)
			s.completeRun(run)
			continue
		}

		if err := s.store.UpsertPrayerTimes(pt); err != nil {
			log.Printf("scheduler: upsert prayer times: %v", err)
		} else if run != nil {
			run.RecordsStored = sql.NullInt64{Int64: 1, Valid: true}
		}
		s.completeRun(run)
	}
}

// recordScores derives the condition scores from a fresh reading and
// appends them to the history table.
func (s *Scheduler) recordScores(snap models.WeatherSnapshot) {
	heatIndex := advisor.HeatIndex(snap.TemperatureC, snap.RelativeHumidityPct)

	var precipProb float64
	if series, err := s.store.LatestHourlySeries(); err != nil {
		log.Printf("scheduler: hourly series for scores: %v", err)
	} else {
		precipProb = series.PrecipProbAt(time.Now().In(s.loc).Hour(), 0)
	}

	wave := advisor.EstimateWaveHeight(snap.WindSpeedKmh)
	var waveCol sql.NullFloat64
	if m, err := s.store.LatestMarineReading(); err != nil {
		log.Printf("scheduler: marine reading for scores: %v", err)
	} else if m != nil && time.Since(m.ObservedAt) < marineFreshness {
		wave = m.WaveHeightM
		waveCol = sql.NullFloat64{Float64: m.WaveHeightM, Valid: true}
	}

	laundry := advisor.ScoreLaundry(snap.TemperatureC, snap.RelativeHumidityPct,
		snap.WindSpeedKmh, precipProb, snap.CloudCoverPct)
	snorkeling := advisor.ScoreSnorkeling(wave, snap.WindSpeedKmh, snap.CloudCoverPct, precipProb)
	mosque := advisor.ScoreMosqueComfort(snap.TemperatureC, snap.RelativeHumidityPct, precipProb)

	_, err := s.store.InsertScoreRecord(models.ScoreRecord{
		RecordedAt:       time.Now().UTC(),
		HeatIndexC:       heatIndex,
		LaundryScore:     laundry.Score,
		LaundryStatus:    laundry.Status,
		SnorkelingScore:  snorkeling.Score,
		SnorkelingStatus: snorkeling.Status,
		MosqueComfort:    mosque.Comfort,
		WaveHeightM:      waveCol,
	})
	if err != nil {
		log.Printf("scheduler: insert score record: %v", err)
		return
	}
	metrics.ScoresComputed.Inc()
}

func (s *Scheduler) cleanupPayloads() {
	deleted, err := s.store.CleanupOldRawPayloads(payloadRetentionDays)
	if err != nil {
		log.Printf("scheduler: cleanup raw payloads: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("scheduler: deleted %d old raw payloads", deleted)
	}
}

func finishRun(run *store.IngestRun, result *FetchResult, err error) {
	if run == nil {
		return
	}
	run.Success = err == nil
	if result != nil {
		run.HTTPStatus = sql.NullInt64{Int64: int64(result.HTTPStatus), Valid: result.HTTPStatus > 0}
		run.ResponseSizeBytes = sql.NullInt64{Int64: int64(result.ResponseSize), Valid: result.ResponseSize > 0}
		run.RecordsParsed = sql.NullInt64{Int64: int64(result.RecordCount), Valid: true}
	}
	if err != nil {
		run.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
	}
}

func (s *Scheduler) completeRun(run *store.IngestRun) {
	if err := s.store.CompleteIngestRun(run); err != nil {
		log.Printf("scheduler: complete ingest run: %v", err)
	}
}
