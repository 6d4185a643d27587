// Package nominatim is an HTTP client for the OpenStreetMap Nominatim
// search and reverse endpoints, requesting GeoJSON output.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "mapkit-api/1.0"
	DefaultTimeout   = 10 * time.Second
)

// StatusError is returned when Nominatim answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nominatim: unexpected status %d: %s", e.Code, e.Body)
}

// Options configures a Client. Zero values fall back to the package defaults.
type Options struct {
	BaseURL    string
	UserAgent  string
	Referer    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to a Nominatim-compatible geocoding service.
type Client struct {
	baseURL   string
	userAgent string
	referer   string
	http      *http.Client
}

// NewClient creates a new Nominatim client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		referer:   opts.Referer,
		http:      opts.HTTPClient,
	}
}

// Reverse resolves a point to the features Nominatim reports for it, with address details.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*FeatureCollection, error) {
	params := url.Values{}
	params.Set("format", "geojson")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("addressdetails", "1")

	return c.get(ctx, "/reverse", params)
}

// Search resolves free text to matching features, with polygon and address details.
func (c *Client) Search(ctx context.Context, query string) (*FeatureCollection, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "geojson")
	params.Set("polygon_geoData", "1")
	params.Set("addressdetails", "1")

	return c.get(ctx, "/search", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*FeatureCollection, error) {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var fc FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("nominatim: decode response: %w", err)
	}

	return &fc, nil
}
