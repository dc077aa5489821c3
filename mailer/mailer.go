package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
)

// Alert is the payload the email webhook expects for a new detection.
type Alert struct {
	Location    string `json:"location"`
	Time        string `json:"time"`
	ActionTaken string `json:"action_taken"`
}

// Mailer fires the detection alert webhook. Send is fire-and-forget from
// the caller's point of view: a failure is logged and must never block
// detection insertion.
type Mailer interface {
	Send(ctx context.Context, alert Alert) error
}

type webhookMailer struct {
	webhookURL string
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(cfg configs.MailerConfig) Mailer {
	return &webhookMailer{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		logger:     log.Logger("mailer"),
	}
}

func (m *webhookMailer) Send(ctx context.Context, alert Alert) error {
	if m.webhookURL == "" {
		return nil
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Error().Err(err).Str("location", alert.Location).Msg("alert webhook failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("alert webhook: http %d", resp.StatusCode)
		m.logger.Error().Err(err).Str("location", alert.Location).Msg("alert webhook rejected")
		return err
	}
	m.logger.Info().Str("location", alert.Location).Msg("detection alert emailed")
	return nil
}
