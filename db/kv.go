package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

// Fixed cache keys. The cache is advisory only: anything authorization
// relevant is re-checked against the data API before it is acted on.
const (
	KeyProfileCache = "ppc-profile-cache"
	KeySettings     = "ppc-settings"
)

var ErrNotFound = errors.New("key not found")

// Settings mirrors the dashboard preferences the browser used to keep in
// local storage.
type Settings struct {
	AlertVolume          int    `json:"alert_volume"`
	DetectionSensitivity string `json:"detection_sensitivity"`
}

func DefaultSettings() Settings {
	return Settings{AlertVolume: 70, DetectionSensitivity: "Medium"}
}

// Client is the local settings/profile cache, a single key-value table in
// an embedded sqlite file.
type Client interface {
	Get(ctx context.Context, key string, out interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	CachedProfile(ctx context.Context, userID string) *store.Profile
	CacheProfile(ctx context.Context, profile *store.Profile) error
	Close() error
}

type kvClient struct {
	db *sql.DB
}

func NewClient(path string) (Client, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	c := &kvClient{db: conn}
	if err := c.init(context.Background()); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *kvClient) init(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

func (c *kvClient) Get(ctx context.Context, key string, out interface{}) error {
	var raw string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func (c *kvClient) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	return err
}

func (c *kvClient) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// CachedProfile returns the cached profile only when it belongs to the
// given user; a stale entry for someone else is treated as a miss.
func (c *kvClient) CachedProfile(ctx context.Context, userID string) *store.Profile {
	var profile store.Profile
	if err := c.Get(ctx, KeyProfileCache, &profile); err != nil {
		return nil
	}
	if profile.ID != userID {
		return nil
	}
	return &profile
}

func (c *kvClient) CacheProfile(ctx context.Context, profile *store.Profile) error {
	if profile == nil {
		return c.Delete(ctx, KeyProfileCache)
	}
	return c.Set(ctx, KeyProfileCache, profile)
}

func (c *kvClient) Close() error {
	return c.db.Close()
}
