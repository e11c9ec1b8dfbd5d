// Package client calls the centers API over HTTP and decodes its envelopes.
package client

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

	"sports-health-centers-api/internal/models"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var e models.ErrorResponse
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) Info(ctx context.Context) (models.ServiceInfo, error) {
	var out models.ServiceInfo
	err := c.get(ctx, "/", nil, &out)
	return out, err
}

func (c *Client) Centers(ctx context.Context, limit, offset int) (models.CenterPage, error) {
	var out models.CenterPage
	params := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	err := c.get(ctx, "/centers", params, &out)
	return out, err
}

func (c *Client) Center(ctx context.Context, id string) (models.Center, error) {
	var out models.Center
	err := c.get(ctx, "/centers/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Search(ctx context.Context, q string) (models.SearchResult, error) {
	var out models.SearchResult
	err := c.get(ctx, "/search", url.Values{"q": {q}}, &out)
	return out, err
}

func (c *Client) ByDiscipline(ctx context.Context, name string) (models.DisciplineResult, error) {
	var out models.DisciplineResult
	err := c.get(ctx, "/discipline", url.Values{"name": {name}}, &out)
	return out, err
}

func (c *Client) ByPathology(ctx context.Context, name string) (models.PathologyResult, error) {
	var out models.PathologyResult
	err := c.get(ctx, "/pathology", url.Values{"name": {name}}, &out)
	return out, err
}

func (c *Client) Disciplines(ctx context.Context) (models.DisciplineList, error) {
	var out models.DisciplineList
	err := c.get(ctx, "/disciplines", nil, &out)
	return out, err
}

func (c *Client) Pathologies(ctx context.Context) (models.PathologyList, error) {
	var out models.PathologyList
	err := c.get(ctx, "/pathologies", nil, &out)
	return out, err
}

func (c *Client) Nearby(ctx context.Context, lat, lng, radiusKm float64) (models.NearbyResult, error) {
	var out models.NearbyResult
	params := url.Values{
		"lat":       {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lng":       {strconv.FormatFloat(lng, 'f', -1, 64)},
		"radius_km": {strconv.FormatFloat(radiusKm, 'f', -1, 64)},
	}
	err := c.get(ctx, "/nearby", params, &out)
	return out, err
}
