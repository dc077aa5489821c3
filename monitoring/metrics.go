package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patrol_detection_polls_total",
		Help: "Detection poll cycles started.",
	})
	PollFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patrol_detection_poll_failures_total",
		Help: "Detection poll cycles that failed and kept prior state.",
	})
	StalePollsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patrol_detection_polls_stale_discarded_total",
		Help: "Poll completions discarded because a newer fetch already applied.",
	})
	DetectionsSurfaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patrol_detections_surfaced_total",
		Help: "Detections that became the foreground alert.",
	})
	AcknowledgementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrol_acknowledgements_total",
		Help: "Acknowledge operations by kind.",
	}, []string{"kind"})
	CurrentDetections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "patrol_current_detections",
		Help: "Unacknowledged detections in the current view.",
	})
	AlarmActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "patrol_alarm_active",
		Help: "1 while the audible alarm is running.",
	})
	DeviceProbeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patrol_device_probe_failures_total",
		Help: "Device controller status probes that failed.",
	})
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrol_api_requests_total",
		Help: "Dashboard API requests by method, path and status.",
	}, []string{"method", "path", "status"})
)
