package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAcknowledge(t *testing.T) {
	t.Parallel()
	assert.True(t, (&Profile{Role: RoleAdmin}).CanAcknowledge())
	assert.True(t, (&Profile{Role: RoleFieldAgent}).CanAcknowledge())
	assert.False(t, (&Profile{Role: RoleViewer}).CanAcknowledge())
	assert.False(t, (&Profile{Role: "intruder"}).CanAcknowledge())

	var nilProfile *Profile
	assert.False(t, nilProfile.CanAcknowledge())
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()
	assert.True(t, (&Profile{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Profile{Role: RoleFieldAgent}).IsAdmin())
	assert.False(t, (&Profile{Role: RoleViewer}).IsAdmin())

	var nilProfile *Profile
	assert.False(t, nilProfile.IsAdmin())
}

func TestErrString(t *testing.T) {
	t.Parallel()
	assert.Contains(t, Err{Status: 404, Code: "PGRST116", Message: "no rows"}.Error(), "PGRST116")
	assert.Contains(t, Err{Status: 502, Message: "down"}.Error(), "502")
}
