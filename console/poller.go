package console

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/monitoring"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/utils"
)

func (s *baseConsole) pollDetections(ctx context.Context) {
	defer s.panicRecover("detections")

	s.FetchDetections()

	ticker := time.NewTicker(time.Duration(s.config.GetPollSecs()) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopping detection poller")
			return
		case <-ticker.C:
			// A slow fetch may still be in flight; the sequence guard in
			// applyFetch keeps completions ordered.
			go s.FetchDetections()
		}
	}
}

// FetchDetections runs one poll cycle: recent acknowledged plus all
// unacknowledged. Any failure leaves the previous views untouched.
func (s *baseConsole) FetchDetections() {
	if s.storeCli == nil {
		return
	}
	seq := atomic.AddUint64(&s.fetchSeq, 1)
	monitoring.PollsTotal.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	recent, err := s.storeCli.RecentDetections(ctx, s.config.GetRecentLimit())
	if err != nil {
		monitoring.PollFailuresTotal.Inc()
		s.logger.Error().Err(err).Msg("fetch recent detections failed, keeping previous view")
		return
	}
	current, err := s.storeCli.UnacknowledgedDetections(ctx)
	if err != nil {
		monitoring.PollFailuresTotal.Inc()
		s.logger.Error().Err(err).Msg("fetch unacknowledged detections failed, keeping previous view")
		return
	}

	s.applyFetch(seq, recent, current)
}

// applyFetch installs a completed fetch as ground truth. Completions are
// last-writer-wins on completion order: a fetch older than the last
// applied one is discarded so a slow early response can never overwrite a
// faster later one.
func (s *baseConsole) applyFetch(seq uint64, recent, current []store.Detection) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if seq <= s.appliedSeq {
		monitoring.StalePollsDiscarded.Inc()
		s.logger.Debug().Uint64("seq", seq).Uint64("applied", s.appliedSeq).Msg("discarding stale fetch")
		return
	}
	s.appliedSeq = seq

	arrivals := newArrivals(s.current, current)
	s.recent = recent
	s.current = current
	monitoring.CurrentDetections.Set(float64(len(current)))

	if len(arrivals) == 0 {
		return
	}
	s.logger.Info().Int("count", len(arrivals)).Msg("new detections arrived")
	newest := newestByTime(arrivals)
	s.surfaceLocked(newest)
}

// newArrivals returns detections present in the fresh fetch but absent,
// by id, from the previous unacknowledged view.
func newArrivals(prev, fresh []store.Detection) []store.Detection {
	seen := make(map[string]struct{}, len(prev))
	for _, d := range prev {
		seen[d.ID] = struct{}{}
	}
	var arrivals []store.Detection
	for _, d := range fresh {
		if _, ok := seen[d.ID]; !ok {
			arrivals = append(arrivals, d)
		}
	}
	return arrivals
}

// newestByTime picks the newest arrival. Equal timestamps keep the
// store's own newest-first ordering, there is no secondary key.
func newestByTime(arrivals []store.Detection) store.Detection {
	sorted := make([]store.Detection, len(arrivals))
	copy(sorted, arrivals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDetectionTime(sorted[i].Time).After(parseDetectionTime(sorted[j].Time))
	})
	return sorted[0]
}

func parseDetectionTime(raw string) time.Time {
	if t, err := time.Parse(utils.StoreTimeLayout, raw); err == nil {
		return t
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *baseConsole) CurrentDetections() []store.Detection {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := make([]store.Detection, len(s.current))
	copy(out, s.current)
	return out
}

func (s *baseConsole) RecentDetections() []store.Detection {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := make([]store.Detection, len(s.recent))
	copy(out, s.recent)
	return out
}
