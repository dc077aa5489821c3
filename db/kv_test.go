package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

func newTestClient(t *testing.T) Client {
	t.Helper()
	c, err := NewClient(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetSetDelete(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	var missing Settings
	assert.Equal(t, ErrNotFound, c.Get(ctx, KeySettings, &missing))

	want := Settings{AlertVolume: 40, DetectionSensitivity: "High"}
	require.NoError(t, c.Set(ctx, KeySettings, want))

	var got Settings
	require.NoError(t, c.Get(ctx, KeySettings, &got))
	assert.Equal(t, want, got)

	// Overwrite in place.
	want.AlertVolume = 90
	require.NoError(t, c.Set(ctx, KeySettings, want))
	require.NoError(t, c.Get(ctx, KeySettings, &got))
	assert.Equal(t, 90, got.AlertVolume)

	require.NoError(t, c.Delete(ctx, KeySettings))
	assert.Equal(t, ErrNotFound, c.Get(ctx, KeySettings, &got))
}

func TestCachedProfile(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	assert.Nil(t, c.CachedProfile(ctx, "u-1"))

	require.NoError(t, c.CacheProfile(ctx, &store.Profile{ID: "u-1", Role: store.RoleAdmin}))

	got := c.CachedProfile(ctx, "u-1")
	require.NotNil(t, got)
	assert.Equal(t, store.RoleAdmin, got.Role)

	// A cached entry for someone else is a miss, not a leak.
	assert.Nil(t, c.CachedProfile(ctx, "u-2"))

	// Caching nil clears the entry.
	require.NoError(t, c.CacheProfile(ctx, nil))
	assert.Nil(t, c.CachedProfile(ctx, "u-1"))
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()
	got := DefaultSettings()
	assert.Equal(t, 70, got.AlertVolume)
	assert.Equal(t, "Medium", got.DetectionSensitivity)
}
