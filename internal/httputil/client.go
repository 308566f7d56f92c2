package httputil

import (
	"net/http"
	"time"
)

const DefaultTimeout = 15 * time.Second

const userAgent = "temanramadhan/1.0"

// NewClient returns an HTTP client with standard timeout configuration and
// a stable User-Agent for the upstream weather and prayer-time services.
func NewClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: userAgentTransport{base: http.DefaultTransport},
	}
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return t.base.RoundTrip(req)
}
