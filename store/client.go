package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
)

var ErrEmptyPatch = errors.New("empty patch")

// Client is the typed accessor over the external data API. It exposes the
// two resources this system reads and writes plus the profile lookup the
// role checks need.
type Client interface {
	RecentDetections(ctx context.Context, limit int) ([]Detection, error)
	UnacknowledgedDetections(ctx context.Context) ([]Detection, error)
	InsertDetection(ctx context.Context, det Detection) (*Detection, error)
	AcknowledgeDetection(ctx context.Context, id string) error
	AcknowledgeAll(ctx context.Context) error
	Perimeters(ctx context.Context) ([]Perimeter, error)
	UpdatePerimeterStatus(ctx context.Context, zone string, status bool) error
	Profile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfileRole(ctx context.Context, userID, role string) error
}

type httpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg configs.StoreConfig) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
		logger: log.Logger("store"),
	}
}

func (c *httpClient) RecentDetections(ctx context.Context, limit int) ([]Detection, error) {
	q := url.Values{}
	q.Set("acknowledged", "eq.true")
	q.Set("order", "time.desc")
	q.Set("limit", strconv.Itoa(limit))

	var out []Detection
	if err := c.do(ctx, http.MethodGet, "detections", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) UnacknowledgedDetections(ctx context.Context) ([]Detection, error) {
	q := url.Values{}
	q.Set("acknowledged", "eq.false")
	q.Set("order", "time.desc")

	var out []Detection
	if err := c.do(ctx, http.MethodGet, "detections", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) InsertDetection(ctx context.Context, det Detection) (*Detection, error) {
	det.ID = ""
	det.Acknowledged = false

	var out []Detection
	if err := c.do(ctx, http.MethodPost, "detections", nil, det, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, Err{Status: http.StatusOK, Message: "insert returned no representation"}
	}
	return &out[0], nil
}

func (c *httpClient) AcknowledgeDetection(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	patch := map[string]interface{}{"acknowledged": true}
	return c.do(ctx, http.MethodPatch, "detections", q, patch, nil)
}

// AcknowledgeAll resolves every open record in one request. Records that
// are already acknowledged simply fall outside the filter, which is what
// makes the operation idempotent.
func (c *httpClient) AcknowledgeAll(ctx context.Context) error {
	q := url.Values{}
	q.Set("acknowledged", "eq.false")
	patch := map[string]interface{}{"acknowledged": true}
	return c.do(ctx, http.MethodPatch, "detections", q, patch, nil)
}

func (c *httpClient) Perimeters(ctx context.Context) ([]Perimeter, error) {
	q := url.Values{}
	q.Set("order", "zone.asc")

	var out []Perimeter
	if err := c.do(ctx, http.MethodGet, "perimeters", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) UpdatePerimeterStatus(ctx context.Context, zone string, status bool) error {
	q := url.Values{}
	q.Set("zone", "eq."+zone)
	patch := map[string]interface{}{"status": status}
	return c.do(ctx, http.MethodPatch, "perimeters", q, patch, nil)
}

func (c *httpClient) Profile(ctx context.Context, userID string) (*Profile, error) {
	q := url.Values{}
	q.Set("id", "eq."+userID)

	var out []Profile
	if err := c.do(ctx, http.MethodGet, "profiles", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, Err{Status: http.StatusNotFound, Code: noRowsCode, Message: "profile not found"}
	}
	return &out[0], nil
}

func (c *httpClient) UpdateProfileRole(ctx context.Context, userID, role string) error {
	if role == "" {
		return ErrEmptyPatch
	}
	q := url.Values{}
	q.Set("id", "eq."+userID)
	patch := map[string]interface{}{"role": role}
	return c.do(ctx, http.MethodPatch, "profiles", q, patch, nil)
}

func (c *httpClient) do(ctx context.Context, method, resource string, query url.Values, body, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, resource)
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := Err{Status: resp.StatusCode, Message: string(data)}
		var parsed struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &parsed); err == nil && parsed.Message != "" {
			apiErr.Code = parsed.Code
			apiErr.Message = parsed.Message
		}
		c.logger.Error().Str("resource", resource).Str("method", method).
			Int("status", resp.StatusCode).Msgf("data API error: %s", apiErr.Message)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s response: %w", resource, err)
		}
	}
	return nil
}
