package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rizaldy/temanramadhan/internal/models"
)

type Store struct {
	db  *sql.DB
	loc *time.Location
}

func New(db *sql.DB, loc *time.Location) *Store {
	return &Store{db: db, loc: loc}
}

func (s *Store) InsertReading(r models.WeatherSnapshot) error {
	_, err := s.db.Exec(`
		INSERT INTO readings (observed_at, temp, humidity, apparent_temp, wind_speed, cloud_cover, precip_mm, weather_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(observed_at) DO NOTHING
	`, r.ObservedAt, r.TemperatureC, r.RelativeHumidityPct, r.ApparentTemperatureC,
		r.WindSpeedKmh, r.CloudCoverPct, r.PrecipitationMm, r.WeatherCode)
	return err
}

func (s *Store) LatestReading() (*models.WeatherSnapshot, error) {
	row := s.db.QueryRow(`
		SELECT observed_at, temp, humidity, apparent_temp, wind_speed, cloud_cover, precip_mm, weather_code
		FROM readings
		ORDER BY observed_at DESC
		LIMIT 1
	`)

	var r models.WeatherSnapshot
	err := row.Scan(&r.ObservedAt, &r.TemperatureC, &r.RelativeHumidityPct, &r.ApparentTemperatureC,
		&r.WindSpeedKmh, &r.CloudCoverPct, &r.PrecipitationMm, &r.WeatherCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) GetReadings(start, end time.Time) ([]models.WeatherSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT observed_at, temp, humidity, apparent_temp, wind_speed, cloud_cover, precip_mm, weather_code
		FROM readings
		WHERE observed_at >= ? AND observed_at <= ?
		ORDER BY observed_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []models.WeatherSnapshot
	for rows.Next() {
		var r models.WeatherSnapshot
		if err := rows.Scan(&r.ObservedAt, &r.TemperatureC, &r.RelativeHumidityPct, &r.ApparentTemperatureC,
			&r.WindSpeedKmh, &r.CloudCoverPct, &r.PrecipitationMm, &r.WeatherCode); err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// ReplaceHourlySeries swaps in a fresh hourly forecast, one row per hour
// index. The previous fetch stays in place so history remains queryable.
func (s *Store) ReplaceHourlySeries(h models.HourlySeries) error {
	if h.Len() == 0 {
		return fmt.Errorf("empty hourly series")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO hourly_forecasts (fetched_at, hour_index, temp, humidity, precip_prob, precip_mm, weather_code, cloud_cover)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fetched_at, hour_index) DO NOTHING
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := 0; i < h.Len(); i++ {
		if _, err := stmt.Exec(h.FetchedAt, i,
			at(h.TemperatureC, i), at(h.RelativeHumidityPct, i), at(h.PrecipProbPct, i),
			at(h.PrecipitationMm, i), atInt(h.WeatherCode, i), at(h.CloudCoverPct, i)); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func at(vals []float64, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	return vals[i]
}

func atInt(vals []int, i int) int {
	if i >= len(vals) {
		return 0
	}
	return vals[i]
}

func (s *Store) LatestHourlySeries() (models.HourlySeries, error) {
	// SELECT the column directly rather than MAX(): the sqlite driver only
	// yields time.Time for columns whose declared type is DATETIME, and an
	// aggregate loses that declared type.
	var fetchedAt sql.NullTime
	err := s.db.QueryRow(`SELECT fetched_at FROM hourly_forecasts ORDER BY fetched_at DESC LIMIT 1`).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return models.HourlySeries{}, nil
	}
	if err != nil {
		return models.HourlySeries{}, err
	}
	if !fetchedAt.Valid {
		return models.HourlySeries{}, nil
	}

	rows, err := s.db.Query(`
		SELECT temp, humidity, precip_prob, precip_mm, weather_code, cloud_cover
		FROM hourly_forecasts
		WHERE fetched_at = ?
		ORDER BY hour_index ASC
	`, fetchedAt.Time)
	if err != nil {
		return models.HourlySeries{}, err
	}
	defer rows.Close()

	h := models.HourlySeries{FetchedAt: fetchedAt.Time}
	for rows.Next() {
		var temp, humidity, precipProb, precipMm, cloudCover float64
		var code int
		if err := rows.Scan(&temp, &humidity, &precipProb, &precipMm, &code, &cloudCover); err != nil {
			return models.HourlySeries{}, err
		}
		h.TemperatureC = append(h.TemperatureC, temp)
		h.RelativeHumidityPct = append(h.RelativeHumidityPct, humidity)
		h.PrecipProbPct = append(h.PrecipProbPct, precipProb)
		h.PrecipitationMm = append(h.PrecipitationMm, precipMm)
		h.WeatherCode = append(h.WeatherCode, code)
		h.CloudCoverPct = append(h.CloudCoverPct, cloudCover)
	}
	return h, rows.Err()
}

func (s *Store) InsertMarineReading(m models.MarineSnapshot) error {
	_, err := s.db.Exec(`
		INSERT INTO marine_readings (observed_at, wave_height)
		VALUES (?, ?)
		ON CONFLICT(observed_at) DO NOTHING
	`, m.ObservedAt, m.WaveHeightM)
	return err
}

func (s *Store) LatestMarineReading() (*models.MarineSnapshot, error) {
	row := s.db.QueryRow(`
		SELECT observed_at, wave_height
		FROM marine_readings
		ORDER BY observed_at DESC
		LIMIT 1
	`)

	var m models.MarineSnapshot
	err := row.Scan(&m.ObservedAt, &m.WaveHeightM)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) UpsertPrayerTimes(p models.PrayerTimes) error {
	_, err := s.db.Exec(`
		INSERT INTO prayer_times (date, imsak, subuh, maghrib, isya)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			imsak = excluded.imsak,
			subuh = excluded.subuh,
			maghrib = excluded.maghrib,
			isya = excluded.isya
	`, dateKey(p.Date), p.Imsak, p.Subuh, p.Maghrib, p.Isya)
	return err
}

func (s *Store) PrayerTimesOn(date time.Time) (*models.PrayerTimes, error) {
	row := s.db.QueryRow(`
		SELECT date, imsak, subuh, maghrib, isya
		FROM prayer_times
		WHERE date = ?
	`, dateKey(date))

	var p models.PrayerTimes
	var key string
	err := row.Scan(&key, &p.Imsak, &p.Subuh, &p.Maghrib, &p.Isya)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Date, err = time.ParseInLocation("2006-01-02", key, s.loc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *Store) InsertScoreRecord(r models.ScoreRecord) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO score_history (recorded_at, heat_index, laundry_score, laundry_status, snorkeling_score, snorkeling_status, mosque_comfort, wave_height)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.RecordedAt, r.HeatIndexC, r.LaundryScore, r.LaundryStatus,
		r.SnorkelingScore, r.SnorkelingStatus, r.MosqueComfort, r.WaveHeightM)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Store) ScoreHistory(since time.Time) ([]models.ScoreRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, recorded_at, heat_index, laundry_score, laundry_status, snorkeling_score, snorkeling_status, mosque_comfort, wave_height
		FROM score_history
		WHERE recorded_at >= ?
		ORDER BY recorded_at ASC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ScoreRecord
	for rows.Next() {
		var r models.ScoreRecord
		if err := rows.Scan(&r.ID, &r.RecordedAt, &r.HeatIndexC, &r.LaundryScore, &r.LaundryStatus,
			&r.SnorkelingScore, &r.SnorkelingStatus, &r.MosqueComfort, &r.WaveHeightM); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
