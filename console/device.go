package console

import (
	"context"
	"time"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/devicectl"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/monitoring"
)

const deviceUnreachableMsg = "unable to reach device controller"

// pollDeviceStatus probes the deterrent controller on its own cadence,
// independent of the detection poller.
func (s *baseConsole) pollDeviceStatus(ctx context.Context) {
	defer s.panicRecover("device status")

	s.probeDevice()

	ticker := time.NewTicker(time.Duration(s.config.GetControllerConfig().PollSecs) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopping device status poller")
			return
		case <-ticker.C:
			s.probeDevice()
		}
	}
}

func (s *baseConsole) probeDevice() {
	if s.device == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, err := s.device.Status(ctx)

	s.devMux.Lock()
	defer s.devMux.Unlock()
	if err != nil {
		monitoring.DeviceProbeFailures.Inc()
		s.devStatus = devicectl.Status{}
		s.devErr = deviceUnreachableMsg
		return
	}
	s.devStatus = status
	s.devErr = ""
}

// DeviceStatus returns the last probed state plus the error string shown
// when the controller is unreachable.
func (s *baseConsole) DeviceStatus() (devicectl.Status, string) {
	s.devMux.Lock()
	defer s.devMux.Unlock()
	return s.devStatus, s.devErr
}

func (s *baseConsole) StartDevice(ctx context.Context) (string, error) {
	result, err := s.device.Start(ctx)
	if err != nil {
		return "", err
	}
	go s.probeDevice()
	return result, nil
}

func (s *baseConsole) StopDevice(ctx context.Context) (string, error) {
	result, err := s.device.Stop(ctx)
	if err != nil {
		return "", err
	}
	go s.probeDevice()
	return result, nil
}
