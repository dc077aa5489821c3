package dashboard

import (
	"github.com/AaronIsserow/penguin-patrol-alert-system2/db"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

// Snapshot is the single read the presentation layer needs per render.
type Snapshot struct {
	SystemTime string            `json:"system_time"`
	Alert      bool              `json:"alert"`
	Current    []store.Detection `json:"current_detections"`
	Recent     []store.Detection `json:"recent_detections"`
	Newest     *store.Detection  `json:"newest_detection,omitempty"`
	Alarm      bool              `json:"alarm_active"`
	Perimeters PerimeterView     `json:"perimeters"`
	Device     DeviceView        `json:"device"`
	Settings   db.Settings       `json:"settings"`
}

type PerimeterView struct {
	Zones   []store.Perimeter `json:"zones"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
}

type DeviceView struct {
	Running bool   `json:"running"`
	Known   bool   `json:"known"`
	Error   string `json:"error,omitempty"`
}

type AddDetectionReq struct {
	Location    string `json:"location" binding:"required"`
	ActionTaken string `json:"action_taken" binding:"required"`
}

type UpdateRoleReq struct {
	Role string `json:"role" binding:"required,oneof=admin field_agent viewer"`
}

type ZoneStatusReq struct {
	Status *bool `json:"status" binding:"required"`
}
