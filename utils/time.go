package utils

import (
	"time"
)

const (
	// StoreTimeLayout is the wire format used for detection timestamps,
	// ISO 8601 with an explicit offset.
	StoreTimeLayout = "2006-01-02T15:04:05-07:00"
	ClockLayout     = "15:04:05"
)

// LoadCivilLocation resolves the deployment's fixed civil timezone,
// falling back to UTC when the zone database misses the name.
func LoadCivilLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatStoreTime normalizes a timestamp to the given civil timezone in
// the store's wire format.
func FormatStoreTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(StoreTimeLayout)
}
