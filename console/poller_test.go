package console

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/mock"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

func TestFetchDetections(t *testing.T) {
	t.Run("no store client is a no-op", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)
		s.FetchDetections()
		assert.Empty(t, s.CurrentDetections())
	})

	t.Run("installs both views", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockStoreClient(ctrl)
		client.EXPECT().RecentDetections(gomock.Any(), 5).Return([]store.Detection{
			{ID: "r-1", Acknowledged: true},
		}, nil)
		client.EXPECT().UnacknowledgedDetections(gomock.Any()).Return([]store.Detection{
			{ID: "c-1", Time: "2026-02-01T10:00:00+02:00"},
		}, nil)

		s := newTestConsole(t, client)
		s.FetchDetections()

		recent := s.RecentDetections()
		require.Len(t, recent, 1)
		assert.Equal(t, "r-1", recent[0].ID)

		current := s.CurrentDetections()
		require.Len(t, current, 1)
		assert.Equal(t, "c-1", current[0].ID)
	})

	t.Run("recent fetch error keeps previous views", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockStoreClient(ctrl)
		client.EXPECT().RecentDetections(gomock.Any(), gomock.Any()).Return(nil, errors.New("fail"))

		s := newTestConsole(t, client)
		s.current = []store.Detection{{ID: "kept"}}
		s.FetchDetections()

		current := s.CurrentDetections()
		require.Len(t, current, 1)
		assert.Equal(t, "kept", current[0].ID)
	})

	t.Run("unacknowledged fetch error keeps previous views", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockStoreClient(ctrl)
		client.EXPECT().RecentDetections(gomock.Any(), gomock.Any()).Return(nil, nil)
		client.EXPECT().UnacknowledgedDetections(gomock.Any()).Return(nil, errors.New("fail"))

		s := newTestConsole(t, client)
		s.recent = []store.Detection{{ID: "kept"}}
		s.FetchDetections()

		recent := s.RecentDetections()
		require.Len(t, recent, 1)
		assert.Equal(t, "kept", recent[0].ID)
	})
}

func TestApplyFetch(t *testing.T) {
	t.Run("stale completion is discarded", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)

		s.applyFetch(2, nil, []store.Detection{{ID: "late"}})
		s.applyFetch(1, nil, []store.Detection{{ID: "early"}})

		current := s.CurrentDetections()
		require.Len(t, current, 1)
		assert.Equal(t, "late", current[0].ID)
		assert.Equal(t, uint64(2), s.appliedSeq)
	})

	t.Run("first fetch surfaces nothing when store is empty", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)

		s.applyFetch(1, nil, nil)
		assert.Nil(t, s.Surfaced())
		assert.False(t, s.AlarmActive())
	})

	t.Run("new arrival surfaces and starts the alarm", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)

		s.applyFetch(1, nil, []store.Detection{{ID: "a", Time: "2026-02-01T10:00:00+02:00"}})

		surfaced := s.Surfaced()
		require.NotNil(t, surfaced)
		assert.Equal(t, "a", surfaced.ID)
		assert.True(t, s.AlarmActive())
	})

	t.Run("unchanged view surfaces nothing after dismissal", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)
		dets := []store.Detection{{ID: "a", Time: "2026-02-01T10:00:00+02:00"}}

		s.applyFetch(1, nil, dets)
		s.DismissSurfaced()
		s.applyFetch(2, nil, dets)

		assert.Nil(t, s.Surfaced())
		assert.False(t, s.AlarmActive())
	})

	t.Run("newest arrival wins", func(t *testing.T) {
		t.Parallel()
		s := newTestConsole(t, nil)

		s.applyFetch(1, nil, []store.Detection{
			{ID: "old", Time: "2026-02-01T09:00:00+02:00"},
			{ID: "new", Time: "2026-02-01T11:00:00+02:00"},
			{ID: "mid", Time: "2026-02-01T10:00:00+02:00"},
		})

		surfaced := s.Surfaced()
		require.NotNil(t, surfaced)
		assert.Equal(t, "new", surfaced.ID)
	})
}

func TestNewArrivals(t *testing.T) {
	t.Parallel()
	prev := []store.Detection{{ID: "a"}, {ID: "b"}}
	fresh := []store.Detection{{ID: "b"}, {ID: "c"}, {ID: "d"}}

	arrivals := newArrivals(prev, fresh)
	require.Len(t, arrivals, 2)
	assert.Equal(t, "c", arrivals[0].ID)
	assert.Equal(t, "d", arrivals[1].ID)

	assert.Empty(t, newArrivals(prev, prev))
	assert.Empty(t, newArrivals(prev, nil))
}

func TestNewestByTime(t *testing.T) {
	t.Run("picks the latest timestamp", func(t *testing.T) {
		t.Parallel()
		got := newestByTime([]store.Detection{
			{ID: "a", Time: "2026-02-01T09:00:00+02:00"},
			{ID: "b", Time: "2026-02-01T12:30:00+02:00"},
			{ID: "c", Time: "2026-02-01T11:00:00+02:00"},
		})
		assert.Equal(t, "b", got.ID)
	})

	t.Run("equal timestamps keep input order", func(t *testing.T) {
		t.Parallel()
		got := newestByTime([]store.Detection{
			{ID: "first", Time: "2026-02-01T12:00:00+02:00"},
			{ID: "second", Time: "2026-02-01T12:00:00+02:00"},
		})
		assert.Equal(t, "first", got.ID)
	})

	t.Run("unparseable time sorts last", func(t *testing.T) {
		t.Parallel()
		got := newestByTime([]store.Detection{
			{ID: "garbage", Time: "not a time"},
			{ID: "real", Time: "2026-02-01T12:00:00+02:00"},
		})
		assert.Equal(t, "real", got.ID)
	})
}

func TestParseDetectionTime(t *testing.T) {
	t.Parallel()
	got := parseDetectionTime("2026-02-01T12:00:00+02:00")
	assert.Equal(t, 12, got.Hour())

	got = parseDetectionTime("2026-02-01T12:00:00Z")
	assert.Equal(t, 12, got.Hour())

	assert.True(t, parseDetectionTime("nonsense").IsZero())
}
