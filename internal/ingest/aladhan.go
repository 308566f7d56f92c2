package ingest

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/rizaldy/temanramadhan/internal/httputil"
	"github.com/rizaldy/temanramadhan/internal/metrics"
	"github.com/rizaldy/temanramadhan/internal/models"
)

// AladhanClient fetches the day's prayer schedule from the Aladhan API.
type AladhanClient struct {
	client  *http.Client
	city    string
	country string
	method  int // calculation method id; 20 = KEMENAG (Indonesia)

	baseURL string // test override
}

func NewAladhanClient(city, country string) *AladhanClient {
	return &AladhanClient{
		client:  httputil.NewClient(),
		city:    city,
		country: country,
		method:  20,
		baseURL: "https://api.aladhan.com",
	}
}

// FetchTimings returns the prayer times for the given date. Aladhan wraps
// timings in an envelope and suffixes some values with the timezone
// ("04:30 (WIB)"), so fields are picked out with gjson and trimmed.
func (c *AladhanClient) FetchTimings(date time.Time) (models.PrayerTimes, string, *FetchResult, error) {
	result := &FetchResult{}
	endpoint := "v1/timingsByCity"
	reqURL := fmt.Sprintf("%s/%s/%s?city=%s&country=%s&method=%d",
		c.baseURL, endpoint, date.Format("02-01-2006"),
		url.QueryEscape(c.city), url.QueryEscape(c.country), c.method)

	start := time.Now()
	resp, err := c.client.Get(reqURL)
	metrics.APILatency.WithLabelValues("aladhan", endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APICallsTotal.WithLabelValues("aladhan", endpoint, "error").Inc()
		result.Error = fmt.Errorf("fetch timings: %w", err)
		return models.PrayerTimes{}, "", result, result.Error
	}
	defer resp.Body.Close()

	result.HTTPStatus = resp.StatusCode
	metrics.APICallsTotal.WithLabelValues("aladhan", endpoint, fmt.Sprint(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Errorf("read body: %w", err)
		return models.PrayerTimes{}, "", result, result.Error
	}
	result.ResponseSize = len(body)

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("fetch timings: status %d: %s", resp.StatusCode, body)
		return models.PrayerTimes{}, string(body), result, result.Error
	}

	timings := gjson.GetBytes(body, "data.timings")
	if !timings.Exists() {
		result.Error = fmt.Errorf("fetch timings: no data.timings in response")
		return models.PrayerTimes{}, string(body), result, result.Error
	}

	pt := models.PrayerTimes{
		Date:    time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Imsak:   cleanTiming(timings.Get("Imsak").String()),
		Subuh:   cleanTiming(timings.Get("Fajr").String()),
		Maghrib: cleanTiming(timings.Get("Maghrib").String()),
		Isya:    cleanTiming(timings.Get("Isha").String()),
	}
	if pt.Imsak == "" || pt.Maghrib == "" {
		result.Error = fmt.Errorf("fetch timings: incomplete timings %q", timings.Raw)
		return models.PrayerTimes{}, string(body), result, result.Error
	}

	result.RecordCount = 1
	return pt, string(body), result, nil
}

func cleanTiming(v string) string {
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}
	return v
}
