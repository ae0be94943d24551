// Package geocode resolves street addresses into coordinates through the
// Google Maps geocoding API. Locations are never persisted with unresolved
// coordinates when created inside a sync transaction; callers abort on error.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// ErrNotResolved means the provider answered but could not place the address.
var ErrNotResolved = errors.New("address could not be resolved")

type Point struct {
	Lat decimal.Decimal
	Lng decimal.Decimal
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (Point, error)
}

const googleEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// Client calls the Google Maps geocoding endpoint.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		endpoint:   googleEndpoint,
		httpClient: http.DefaultClient,
	}
}

// NewClientWithEndpoint allows pointing the client at a test server.
func NewClientWithEndpoint(apiKey, endpoint string) *Client {
	c := NewClient(apiKey)
	c.endpoint = endpoint

	return c
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *Client) Geocode(ctx context.Context, address string) (Point, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("calling geocoder: %w", err)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Point{}, fmt.Errorf("decoding geocode response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return Point{}, fmt.Errorf("%w: status %s", ErrNotResolved, body.Status)
	}

	loc := body.Results[0].Geometry.Location

	return Point{
		Lat: decimal.NewFromFloat(loc.Lat),
		Lng: decimal.NewFromFloat(loc.Lng),
	}, nil
}
