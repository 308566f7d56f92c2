// Package ingest fetches weather, marine, and prayer-time data from the
// upstream APIs and lands it in the store on a fixed cadence.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/rizaldy/temanramadhan/internal/httputil"
	"github.com/rizaldy/temanramadhan/internal/metrics"
	"github.com/rizaldy/temanramadhan/internal/models"
)

// FetchResult carries the bookkeeping of one upstream call for the ingest
// audit trail.
type FetchResult struct {
	HTTPStatus   int
	ResponseSize int
	RecordCount  int
	Error        error
}

// OpenMeteoClient talks to the Open-Meteo forecast and marine APIs for one
// fixed location. Calls retry with exponential backoff and trip a circuit
// breaker after repeated failures so a dead upstream is not hammered.
type OpenMeteoClient struct {
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	lat, lon float64
	loc      *time.Location

	forecastURL string // test override
	marineURL   string
}

func NewOpenMeteoClient(lat, lon float64, loc *time.Location) *OpenMeteoClient {
	return &OpenMeteoClient{
		client: httputil.NewClient(),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "open-meteo",
			Timeout: 2 * time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		lat:         lat,
		lon:         lon,
		loc:         loc,
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		marineURL:   "https://marine-api.open-meteo.com/v1/marine",
	}
}

type forecastResponse struct {
	Current struct {
		Time                string  `json:"time"`
		Temperature2m       float64 `json:"temperature_2m"`
		RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		Precipitation       float64 `json:"precipitation"`
		WeatherCode         int     `json:"weather_code"`
		CloudCover          float64 `json:"cloud_cover"`
		WindSpeed10m        float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		RelativeHumidity2m       []float64 `json:"relative_humidity_2m"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		Precipitation            []float64 `json:"precipitation"`
		WeatherCode              []int     `json:"weather_code"`
		CloudCover               []float64 `json:"cloud_cover"`
	} `json:"hourly"`
}

// FetchForecast returns the current conditions snapshot and the two-day
// hourly series, plus the raw body for archival.
func (c *OpenMeteoClient) FetchForecast() (models.WeatherSnapshot, models.HourlySeries, string, *FetchResult, error) {
	reqURL := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,cloud_cover,wind_speed_10m&hourly=temperature_2m,relative_humidity_2m,precipitation_probability,precipitation,weather_code,cloud_cover&timezone=%s&forecast_days=2",
		c.forecastURL, c.lat, c.lon, url.QueryEscape(c.loc.String()))

	body, result, err := c.get("v1/forecast", reqURL)
	if err != nil {
		return models.WeatherSnapshot{}, models.HourlySeries{}, string(body), result, err
	}

	var data forecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		result.Error = fmt.Errorf("unmarshal forecast: %w", err)
		return models.WeatherSnapshot{}, models.HourlySeries{}, string(body), result, result.Error
	}

	observedAt, err := time.ParseInLocation("2006-01-02T15:04", data.Current.Time, c.loc)
	if err != nil {
		result.Error = fmt.Errorf("parse current time %q: %w", data.Current.Time, err)
		return models.WeatherSnapshot{}, models.HourlySeries{}, string(body), result, result.Error
	}

	snap := models.WeatherSnapshot{
		ObservedAt:           observedAt,
		TemperatureC:         data.Current.Temperature2m,
		RelativeHumidityPct:  data.Current.RelativeHumidity2m,
		ApparentTemperatureC: data.Current.ApparentTemperature,
		WindSpeedKmh:         data.Current.WindSpeed10m,
		CloudCoverPct:        data.Current.CloudCover,
		PrecipitationMm:      data.Current.Precipitation,
		WeatherCode:          data.Current.WeatherCode,
	}.Normalized()

	series := models.HourlySeries{
		FetchedAt:           time.Now().UTC(),
		TemperatureC:        data.Hourly.Temperature2m,
		RelativeHumidityPct: data.Hourly.RelativeHumidity2m,
		PrecipProbPct:       data.Hourly.PrecipitationProbability,
		PrecipitationMm:     data.Hourly.Precipitation,
		WeatherCode:         data.Hourly.WeatherCode,
		CloudCoverPct:       data.Hourly.CloudCover,
	}

	result.RecordCount = 1 + series.Len()
	return snap, series, string(body), result, nil
}

type marineResponse struct {
	Current struct {
		Time       string  `json:"time"`
		WaveHeight float64 `json:"wave_height"`
	} `json:"current"`
}

// FetchMarine returns the current wave-height reading.
func (c *OpenMeteoClient) FetchMarine() (models.MarineSnapshot, string, *FetchResult, error) {
	reqURL := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=wave_height&timezone=%s",
		c.marineURL, c.lat, c.lon, url.QueryEscape(c.loc.String()))

	body, result, err := c.get("v1/marine", reqURL)
	if err != nil {
		return models.MarineSnapshot{}, string(body), result, err
	}

	var data marineResponse
	if err := json.Unmarshal(body, &data); err != nil {
		result.Error = fmt.Errorf("unmarshal marine: %w", err)
		return models.MarineSnapshot{}, string(body), result, result.Error
	}

	observedAt, err := time.ParseInLocation("2006-01-02T15:04", data.Current.Time, c.loc)
	if err != nil {
		result.Error = fmt.Errorf("parse marine time %q: %w", data.Current.Time, err)
		return models.MarineSnapshot{}, string(body), result, result.Error
	}

	result.RecordCount = 1
	return models.MarineSnapshot{
		ObservedAt:  observedAt,
		WaveHeightM: data.Current.WaveHeight,
	}, string(body), result, nil
}

// get runs one GET through the breaker, retrying transient failures.
// Client errors (4xx) are permanent and do not retry.
func (c *OpenMeteoClient) get(endpoint, reqURL string) ([]byte, *FetchResult, error) {
	result := &FetchResult{}

	fetch := func() ([]byte, error) {
		start := time.Now()
		resp, err := c.client.Get(reqURL)
		metrics.APILatency.WithLabelValues("open-meteo", endpoint).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.APICallsTotal.WithLabelValues("open-meteo", endpoint, "error").Inc()
			return nil, err
		}
		defer resp.Body.Close()

		result.HTTPStatus = resp.StatusCode
		metrics.APICallsTotal.WithLabelValues("open-meteo", endpoint, fmt.Sprint(resp.StatusCode)).Inc()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		result.ResponseSize = len(body)

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("%s: status %d: %s", endpoint, resp.StatusCode, body)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return body, backoff.Permanent(err)
			}
			return body, err
		}
		return body, nil
	}

	out, err := c.breaker.Execute(func() (any, error) {
		var body []byte
		err := backoff.Retry(func() error {
			var err error
			body, err = fetch()
			return err
		}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
		return body, err
	})
	if err != nil {
		result.Error = err
		var body []byte
		if b, ok := out.([]byte); ok {
			body = b
		}
		return body, result, err
	}
	return out.([]byte), result, nil
}
