package console

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/devicectl"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/mock"
)

func TestProbeDevice(t *testing.T) {
	t.Run("no device client is a no-op", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)
		s.probeDevice()

		status, errMsg := s.DeviceStatus()
		assert.False(t, status.Known)
		assert.Empty(t, errMsg)
	})

	t.Run("records the probed state", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mock.NewMockDeviceClient(ctrl)
		device.EXPECT().Status(gomock.Any()).
			Return(devicectl.Status{Running: true, Known: true}, nil)

		s := newTestConsole(t, nil)
		s.device = device
		s.probeDevice()

		status, errMsg := s.DeviceStatus()
		assert.True(t, status.Running)
		assert.True(t, status.Known)
		assert.Empty(t, errMsg)
	})

	t.Run("unreachable controller clears the state", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mock.NewMockDeviceClient(ctrl)
		gomock.InOrder(
			device.EXPECT().Status(gomock.Any()).
				Return(devicectl.Status{Running: true, Known: true}, nil),
			device.EXPECT().Status(gomock.Any()).
				Return(devicectl.Status{}, devicectl.ErrUnreachable),
		)

		s := newTestConsole(t, nil)
		s.device = device

		s.probeDevice()
		s.probeDevice()

		status, errMsg := s.DeviceStatus()
		assert.False(t, status.Known)
		assert.Equal(t, "unable to reach device controller", errMsg)
	})
}

func TestStartStopDevice(t *testing.T) {
	t.Run("start returns the controller result", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mock.NewMockDeviceClient(ctrl)
		device.EXPECT().Start(gomock.Any()).Return("started", nil)
		device.EXPECT().Status(gomock.Any()).
			Return(devicectl.Status{Running: true, Known: true}, nil).AnyTimes()

		s := newTestConsole(t, nil)
		s.device = device

		result, err := s.StartDevice(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "started", result)
	})

	t.Run("stop failure skips the follow-up probe", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mock.NewMockDeviceClient(ctrl)
		device.EXPECT().Stop(gomock.Any()).Return("", errors.New("fail"))

		s := newTestConsole(t, nil)
		s.device = device

		_, err := s.StopDevice(context.Background())
		assert.NotNil(t, err)
	})
}
