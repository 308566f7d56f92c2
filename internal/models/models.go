package models

import (
	"database/sql"
	"time"
)

// WeatherSnapshot is a single current-conditions reading from the forecast API.
// Construct via Normalized to get the documented range guarantees.
type WeatherSnapshot struct {
	ObservedAt           time.Time `json:"observedAt"`
	TemperatureC         float64   `json:"temperatureC"`
	RelativeHumidityPct  float64   `json:"relativeHumidityPct"`
	ApparentTemperatureC float64   `json:"apparentTemperatureC"`
	WindSpeedKmh         float64   `json:"windSpeedKmh"`
	CloudCoverPct        float64   `json:"cloudCoverPct"`
	PrecipitationMm      float64   `json:"precipitationMm"`
	WeatherCode          int       `json:"weatherCode"`
}

// Normalized clamps humidity and cloud cover into [0,100] and treats
// negative wind and precipitation as 0.
func (s WeatherSnapshot) Normalized() WeatherSnapshot {
	s.RelativeHumidityPct = clampPct(s.RelativeHumidityPct)
	s.CloudCoverPct = clampPct(s.CloudCoverPct)
	if s.WindSpeedKmh < 0 {
		s.WindSpeedKmh = 0
	}
	if s.PrecipitationMm < 0 {
		s.PrecipitationMm = 0
	}
	return s
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// HourlySeries holds parallel per-hour arrays: indices [0..23] cover today,
// [24..47] tomorrow. All slices are the same length.
type HourlySeries struct {
	FetchedAt           time.Time `json:"fetchedAt"`
	TemperatureC        []float64 `json:"temperatureC"`
	RelativeHumidityPct []float64 `json:"relativeHumidityPct"`
	PrecipProbPct       []float64 `json:"precipProbPct"`
	PrecipitationMm     []float64 `json:"precipitationMm"`
	WeatherCode         []int     `json:"weatherCode"`
	CloudCoverPct       []float64 `json:"cloudCoverPct"`
}

// Len returns the number of hours in the series.
func (h HourlySeries) Len() int {
	return len(h.PrecipProbPct)
}

// PrecipProbAt returns the precipitation probability for the given hour
// index. Out-of-range reads fail soft: past the end returns the latest known
// value, before the start (or an empty series) returns def.
func (h HourlySeries) PrecipProbAt(hour int, def float64) float64 {
	return valueAt(h.PrecipProbPct, hour, def)
}

// TemperatureAt returns the temperature for the given hour index with the
// same fail-soft semantics as PrecipProbAt.
func (h HourlySeries) TemperatureAt(hour int, def float64) float64 {
	return valueAt(h.TemperatureC, hour, def)
}

func valueAt(vals []float64, hour int, def float64) float64 {
	if len(vals) == 0 || hour < 0 {
		return def
	}
	if hour >= len(vals) {
		return vals[len(vals)-1]
	}
	return vals[hour]
}

// MarineSnapshot is a reading from the marine forecast API. It is optional:
// callers substitute a wind-derived estimate when no reading is available.
type MarineSnapshot struct {
	ObservedAt  time.Time `json:"observedAt"`
	WaveHeightM float64   `json:"waveHeightM"`
}

// PrayerTimes holds the day's relevant prayer schedule in zero-padded
// 24-hour "HH:MM" strings.
type PrayerTimes struct {
	Date    time.Time `json:"date"`
	Imsak   string    `json:"imsak"`
	Subuh   string    `json:"subuh"`
	Maghrib string    `json:"maghrib"`
	Isya    string    `json:"isya"`
}

// ScoreRecord is a stored history row of derived condition scores, computed
// once per ingest cycle from the fresh snapshot.
type ScoreRecord struct {
	ID               int64           `json:"id"`
	RecordedAt       time.Time       `json:"recordedAt"`
	HeatIndexC       float64         `json:"heatIndexC"`
	LaundryScore     int             `json:"laundryScore"`
	LaundryStatus    string          `json:"laundryStatus"`
	SnorkelingScore  int             `json:"snorkelingScore"`
	SnorkelingStatus string          `json:"snorkelingStatus"`
	MosqueComfort    string          `json:"mosqueComfort"`
	WaveHeightM      sql.NullFloat64 `json:"-"`
}
