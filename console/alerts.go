package console

import (
	"context"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/monitoring"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

// surfaceLocked promotes a detection to the single foreground slot and
// starts the alarm. While a live camera view holds focus the promotion is
// deferred, not dropped: the detection parks in pending and surfaces on
// focus release or on a later poll. Caller holds s.mux.
func (s *baseConsole) surfaceLocked(det store.Detection) {
	if s.focusHeld {
		s.pending = &det
		s.logger.Info().Str("detection_id", det.ID).Msg("focus held, deferring alert")
		return
	}
	if s.surfaced != nil && s.surfaced.ID == det.ID {
		return
	}
	s.surfaced = &det
	s.pending = nil
	monitoring.DetectionsSurfaced.Inc()
	s.logger.Info().Str("detection_id", det.ID).Str("location", det.Location).Msg("detection surfaced")
	s.startAlarmLocked(det)
}

func (s *baseConsole) Surfaced() *store.Detection {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.surfaced == nil {
		return nil
	}
	det := *s.surfaced
	return &det
}

func (s *baseConsole) AlarmActive() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.alarmActive
}

// AcknowledgeDetection resolves exactly one detection. The cached role is
// advisory only: the caller's role is re-read from the profiles resource
// before the mutation is applied. Acknowledging an already-acknowledged
// id is a no-op at the store, so the operation is idempotent.
func (s *baseConsole) AcknowledgeDetection(ctx context.Context, sess *auth.Session, id string) error {
	if err := s.authorize(ctx, sess, (*store.Profile).CanAcknowledge); err != nil {
		return err
	}

	// The alarm must stop on every exit from the foreground slot, even
	// when the store update below fails. A failed update leaves the
	// record open; like a dismissal, it surfaces again only if it leaves
	// and re-enters the unacknowledged view as a new arrival.
	s.mux.Lock()
	if s.surfaced != nil && s.surfaced.ID == id {
		s.surfaced = nil
		s.stopAlarmLocked()
	}
	// A deferred copy of the same id must not outlive the acknowledgment,
	// or releasing focus would re-surface a terminal record.
	if s.pending != nil && s.pending.ID == id {
		s.pending = nil
	}
	s.mux.Unlock()

	if err := s.storeCli.AcknowledgeDetection(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("detection_id", id).Msg("acknowledge failed")
		return err
	}
	monitoring.AcknowledgementsTotal.WithLabelValues("one").Inc()
	s.logger.Info().Str("detection_id", id).Str("user_id", sess.UserID).Msg("detection acknowledged")

	go s.FetchDetections()
	return nil
}

// AcknowledgeAll resolves every open record irrespective of which one was
// foreground, then empties the foreground slot.
func (s *baseConsole) AcknowledgeAll(ctx context.Context, sess *auth.Session) error {
	if err := s.authorize(ctx, sess, (*store.Profile).CanAcknowledge); err != nil {
		return err
	}

	s.mux.Lock()
	s.surfaced = nil
	s.pending = nil
	s.stopAlarmLocked()
	s.mux.Unlock()

	if err := s.storeCli.AcknowledgeAll(ctx); err != nil {
		s.logger.Error().Err(err).Msg("acknowledge all failed")
		return err
	}
	monitoring.AcknowledgementsTotal.WithLabelValues("all").Inc()
	s.logger.Info().Str("user_id", sess.UserID).Msg("all detections acknowledged")

	go s.FetchDetections()
	return nil
}

// authorize re-validates the caller's role against the source of truth
// before a privileged mutation. A store failure denies the action rather
// than falling back to the cached role.
func (s *baseConsole) authorize(ctx context.Context, sess *auth.Session, allowed func(*store.Profile) bool) error {
	if sess == nil {
		return ErrNoSession
	}
	if s.storeCli == nil {
		return ErrNoStoreClient
	}
	fresh, err := s.storeCli.Profile(ctx, sess.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", sess.UserID).Msg("role re-check failed, denying")
		return ErrNotPermitted
	}
	_ = s.cache.CacheProfile(ctx, fresh)
	if !allowed(fresh) {
		return ErrNotPermitted
	}
	return nil
}

// DismissSurfaced closes the foreground alert without acknowledging. The
// store record stays open.
func (s *baseConsole) DismissSurfaced() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.surfaced == nil {
		return
	}
	s.logger.Info().Str("detection_id", s.surfaced.ID).Msg("alert dismissed without acknowledgment")
	s.surfaced = nil
	s.stopAlarmLocked()
}

// RedirectToCamera hands the foreground to the live camera view: the
// alert closes, the alarm stops, and new alerts are deferred until the
// view releases focus.
func (s *baseConsole) RedirectToCamera() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.focusHeld = true
	if s.surfaced != nil {
		s.logger.Info().Str("detection_id", s.surfaced.ID).Msg("alert redirected to camera view")
		s.surfaced = nil
	}
	s.stopAlarmLocked()
}

// ReleaseFocus lets a deferred alert through immediately.
func (s *baseConsole) ReleaseFocus() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.focusHeld {
		return
	}
	s.focusHeld = false
	if s.pending != nil {
		det := *s.pending
		s.pending = nil
		s.surfaceLocked(det)
	}
}

func (s *baseConsole) startAlarmLocked(det store.Detection) {
	s.alarmActive = true
	monitoring.AlarmActive.Set(1)
	s.publishAlarm(store.AlarmState{Active: true, Location: det.Location, Detection: det.ID})
}

// stopAlarmLocked is idempotent; every exit path from the foreground slot
// runs through it.
func (s *baseConsole) stopAlarmLocked() {
	if !s.alarmActive {
		return
	}
	s.alarmActive = false
	monitoring.AlarmActive.Set(0)
	s.publishAlarm(store.AlarmState{Active: false})
}

func (s *baseConsole) publishAlarm(state store.AlarmState) {
	if s.notifier == nil {
		return
	}
	go func() {
		defer s.panicRecover("alarm publish")
		if err := s.notifier.PublishAlarm(state); err != nil {
			s.logger.Error().Err(err).Bool("active", state.Active).Msg("publish alarm state failed")
		}
	}()
}
