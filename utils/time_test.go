package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCivilLocation(t *testing.T) {
	t.Parallel()
	loc := LoadCivilLocation("Africa/Johannesburg")
	assert.Equal(t, "Africa/Johannesburg", loc.String())

	assert.Equal(t, time.UTC, LoadCivilLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadCivilLocation(""))
}

func TestFormatStoreTime(t *testing.T) {
	t.Parallel()
	loc := LoadCivilLocation("Africa/Johannesburg")
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	got := FormatStoreTime(at, loc)
	assert.Equal(t, "2026-02-01T10:00:00+02:00", got)

	parsed, err := time.Parse(StoreTimeLayout, got)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(at))
}
