package console

import (
	"context"
	"errors"
	"time"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

// PerimeterTimeoutMsg is surfaced when the initial load exceeds its
// bound. There is no automatic retry, the user refreshes manually.
const PerimeterTimeoutMsg = "request timed out, please refresh"

// loadPerimeters runs the initial (or manually refreshed) perimeter
// fetch. It resolves within the configured bound one way or the other:
// loading is never left true past the timeout.
func (s *baseConsole) loadPerimeters() {
	s.perimMux.Lock()
	s.perimLoading = true
	s.perimErr = ""
	s.perimMux.Unlock()

	timeout := time.Duration(s.config.GetPerimeterLoadTimeoutSecs()) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	list, err := s.storeCli.Perimeters(ctx)

	s.perimMux.Lock()
	defer s.perimMux.Unlock()
	s.perimLoading = false
	if err != nil {
		s.perimeters = nil
		if errors.Is(err, context.DeadlineExceeded) {
			s.perimErr = PerimeterTimeoutMsg
		} else {
			s.perimErr = err.Error()
		}
		s.logger.Error().Err(err).Msg("perimeter load failed")
		return
	}
	s.perimeters = list
	s.perimErr = ""
	s.logger.Info().Int("count", len(list)).Msg("perimeters loaded")
}

// applyPerimeterEvent folds one live change notification into the view:
// update and delete match by id, insert appends.
func (s *baseConsole) applyPerimeterEvent(ev store.PerimeterEvent) {
	s.perimMux.Lock()
	defer s.perimMux.Unlock()

	switch ev.Type {
	case store.EventUpdate:
		for i := range s.perimeters {
			if s.perimeters[i].ID == ev.Row.ID {
				s.perimeters[i] = ev.Row
				return
			}
		}
	case store.EventInsert:
		for i := range s.perimeters {
			if s.perimeters[i].ID == ev.Row.ID {
				return
			}
		}
		s.perimeters = append(s.perimeters, ev.Row)
	case store.EventDelete:
		for i := range s.perimeters {
			if s.perimeters[i].ID == ev.Row.ID {
				s.perimeters = append(s.perimeters[:i], s.perimeters[i+1:]...)
				return
			}
		}
	}
}

// Perimeters returns the tracked list plus the loading flag and the
// typed error string; both are part of the contract with the
// presentation layer.
func (s *baseConsole) Perimeters() ([]store.Perimeter, bool, string) {
	s.perimMux.Lock()
	defer s.perimMux.Unlock()
	out := make([]store.Perimeter, len(s.perimeters))
	copy(out, s.perimeters)
	return out, s.perimLoading, s.perimErr
}

func (s *baseConsole) RefreshPerimeters() {
	s.loadPerimeters()
}

// SetZoneStatus is the optimistic local update used by the reachability
// probe: write through to the store, then update the in-memory view. The
// live-update channel echoes the same row back later, which is a no-op.
func (s *baseConsole) SetZoneStatus(ctx context.Context, zone string, status bool) error {
	if err := s.storeCli.UpdatePerimeterStatus(ctx, zone, status); err != nil {
		s.perimMux.Lock()
		s.perimErr = err.Error()
		s.perimMux.Unlock()
		s.logger.Error().Err(err).Str("zone", zone).Msg("perimeter status update failed")
		return err
	}

	s.perimMux.Lock()
	defer s.perimMux.Unlock()
	for i := range s.perimeters {
		if s.perimeters[i].Zone == zone {
			s.perimeters[i].Status = status
		}
	}
	s.logger.Info().Str("zone", zone).Bool("status", status).Msg("perimeter status updated")
	return nil
}
