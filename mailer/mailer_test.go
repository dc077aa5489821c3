package mailer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
)

func TestSend(t *testing.T) {
	t.Run("posts the alert payload", func(t *testing.T) {
		t.Parallel()
		var body string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			data, _ := io.ReadAll(r.Body)
			body = string(data)
		}))
		defer srv.Close()

		m := New(configs.MailerConfig{WebhookURL: srv.URL, TimeoutSecs: 5})
		err := m.Send(context.Background(), Alert{
			Location:    "Boulders Beach",
			Time:        "2026-02-01T10:00:00+02:00",
			ActionTaken: "sound deterrent",
		})
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"location": "Boulders Beach",
			"time": "2026-02-01T10:00:00+02:00",
			"action_taken": "sound deterrent"
		}`, body)
	})

	t.Run("no webhook configured is a no-op", func(t *testing.T) {
		t.Parallel()
		m := New(configs.MailerConfig{})
		assert.NoError(t, m.Send(context.Background(), Alert{Location: "anywhere"}))
	})

	t.Run("rejection is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		m := New(configs.MailerConfig{WebhookURL: srv.URL, TimeoutSecs: 5})
		assert.NotNil(t, m.Send(context.Background(), Alert{Location: "anywhere"}))
	})
}
