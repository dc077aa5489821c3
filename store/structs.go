package store

import (
	"fmt"
	"strings"
)

const (
	RoleAdmin      = "admin"
	RoleFieldAgent = "field_agent"
	RoleViewer     = "viewer"
)

// Detection is one sensor-triggered event at a named perimeter zone.
// The id is assigned by the store on insert; acknowledged only ever
// transitions false to true.
type Detection struct {
	ID           string `json:"id,omitempty"`
	Location     string `json:"location"`
	Time         string `json:"time"`
	ActionTaken  string `json:"action_taken"`
	Acknowledged bool   `json:"acknowledged"`
}

// Perimeter is a named monitored zone with a binary online/offline status.
type Perimeter struct {
	ID     string `json:"id"`
	Zone   string `json:"zone"`
	Status bool   `json:"status"`
}

// Profile is the authorization record kept by the data API, one per user.
type Profile struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// CanAcknowledge reports whether the profile's role may transition
// detections. Viewers only observe.
func (p *Profile) CanAcknowledge() bool {
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin || p.Role == RoleFieldAgent
}

// IsAdmin reports whether the profile may create detections and manage
// other users' roles.
func (p *Profile) IsAdmin() bool {
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin
}

// Err is a data API failure, carrying the API's own error code when the
// response body had one.
type Err struct {
	Status  int
	Code    string
	Message string
}

func (e Err) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store error %s (http %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("store error (http %d): %s", e.Status, e.Message)
}

const noRowsCode = "PGRST116"

// IsNoRows reports whether the error is the API's "zero rows" code, which
// callers treat as absence rather than failure.
func IsNoRows(err error) bool {
	e, ok := err.(Err)
	return ok && e.Code == noRowsCode
}

// IsAuthErr reports whether the failure means the caller's token is
// missing or expired and the user must be sent back to sign-in.
func IsAuthErr(err error) bool {
	e, ok := err.(Err)
	if !ok {
		return false
	}
	return e.Status == 401 || strings.Contains(e.Message, "JWT")
}
