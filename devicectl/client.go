package devicectl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
)

var ErrUnreachable = errors.New("device controller unreachable")

// Status is the controller's answer to a status probe. Known is false
// when the controller could not be reached, so the caller can show
// "unknown" instead of guessing.
type Status struct {
	Running bool
	Known   bool
}

// Client drives the deterrent camera/detector controller: a status probe
// and start/stop commands.
type Client interface {
	Status(ctx context.Context) (Status, error)
	Start(ctx context.Context) (string, error)
	Stop(ctx context.Context) (string, error)
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg configs.ControllerConfig) Client {
	return &httpClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     log.Logger("devicectl"),
	}
}

func (c *httpClient) Status(ctx context.Context) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return Status{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Status{}, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Status{}, fmt.Errorf("status probe: http %d", resp.StatusCode)
	}
	var body struct {
		Running bool `json:"running"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Status{}, err
	}
	return Status{Running: body.Running, Known: true}, nil
}

func (c *httpClient) Start(ctx context.Context) (string, error) {
	return c.command(ctx, "start")
}

func (c *httpClient) Stop(ctx context.Context) (string, error) {
	return c.command(ctx, "stop")
}

func (c *httpClient) command(ctx context.Context, cmd string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+cmd, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("command", cmd).Msg("device command failed")
		return "", ErrUnreachable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("device %s: http %d", cmd, resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", err
	}
	c.logger.Info().Str("command", cmd).Str("status", body.Status).Msg("device command sent")
	return body.Status, nil
}
