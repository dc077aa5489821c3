package console

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/db"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/devicectl"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/mailer"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/utils"
)

var (
	ErrNoStoreClient = errors.New("store client not initialized")
	ErrNotPermitted  = errors.New("role not permitted to acknowledge")
	ErrNoSession     = errors.New("no session")
)

// Console owns the monitoring state: the polled detection views, the
// alert lifecycle, the perimeter tracker and the device status. All
// mutation happens through it so the presentation layer only ever reads
// consistent snapshots.
type Console interface {
	Start()
	Stop()

	FetchDetections()
	CurrentDetections() []store.Detection
	RecentDetections() []store.Detection
	Surfaced() *store.Detection
	AlarmActive() bool

	AcknowledgeDetection(ctx context.Context, sess *auth.Session, id string) error
	AcknowledgeAll(ctx context.Context, sess *auth.Session) error
	DismissSurfaced()
	RedirectToCamera()
	ReleaseFocus()

	AddDetection(ctx context.Context, sess *auth.Session, location, actionTaken string) (*store.Detection, error)
	SetUserRole(ctx context.Context, sess *auth.Session, userID, role string) error

	Perimeters() ([]store.Perimeter, bool, string)
	RefreshPerimeters()
	SetZoneStatus(ctx context.Context, zone string, status bool) error

	DeviceStatus() (devicectl.Status, string)
	StartDevice(ctx context.Context) (string, error)
	StopDevice(ctx context.Context) (string, error)

	Profile(ctx context.Context, sess *auth.Session) *store.Profile
	Settings(ctx context.Context) db.Settings
	SaveSettings(ctx context.Context, settings db.Settings) error

	Clock() string
	GetConfig() configs.Config
}

type baseConsole struct {
	config   configs.Config
	storeCli store.Client
	notifier store.Notifier
	device   devicectl.Client
	mail     mailer.Mailer
	cache    db.Client
	logger   zerolog.Logger
	loc      *time.Location

	ctx    context.Context
	cancel context.CancelFunc

	// mux guards the detection views and the alert lifecycle below.
	mux        sync.Mutex
	fetchSeq   uint64
	appliedSeq uint64
	current    []store.Detection
	recent     []store.Detection

	surfaced    *store.Detection
	pending     *store.Detection
	focusHeld   bool
	alarmActive bool

	// perimMux guards the perimeter tracker state.
	perimMux     sync.Mutex
	perimeters   []store.Perimeter
	perimLoading bool
	perimErr     string

	// devMux guards the device controller status.
	devMux    sync.Mutex
	devStatus devicectl.Status
	devErr    string
}

// New wires a console from its collaborators. notifier may be nil, in
// which case perimeter state is poll-only and alarm state stays local.
func New(cfg configs.Config, storeCli store.Client, notifier store.Notifier,
	device devicectl.Client, mail mailer.Mailer, cache db.Client) Console {
	return &baseConsole{
		config:       cfg,
		storeCli:     storeCli,
		notifier:     notifier,
		device:       device,
		mail:         mail,
		cache:        cache,
		logger:       log.Logger("console"),
		loc:          utils.LoadCivilLocation(cfg.GetTimeZone()),
		perimLoading: true,
	}
}

// Start brings the loops up: the eager first detection fetch, the fixed
// cadence pollers and the perimeter subscription.
func (s *baseConsole) Start() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.loadPerimeters()
	if s.notifier != nil {
		if err := s.notifier.SubscribePerimeters(s.applyPerimeterEvent); err != nil {
			s.logger.Error().Err(err).Msg("perimeter subscription failed, running poll-only")
		}
	}

	go s.pollDetections(s.ctx)
	go s.pollDeviceStatus(s.ctx)
	s.logger.Info().Msg("console started")
}

func (s *baseConsole) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.notifier != nil {
		s.notifier.Close()
	}
	s.logger.Info().Msg("console stopped")
}

func (s *baseConsole) panicRecover(loop string) {
	if r := recover(); r != nil {
		s.logger.Error().Stack().Interface("error", r).Str("loop", loop).Msg("panic in console loop")
	}
}

// AddDetection inserts a simulated detection the way the real detectors
// do: acknowledged=false, time normalized to the civil timezone. Admin
// only; the caller's role is re-read before the insert. The email
// webhook fires in the background and never blocks the insert.
func (s *baseConsole) AddDetection(ctx context.Context, sess *auth.Session, location, actionTaken string) (*store.Detection, error) {
	if s.storeCli == nil {
		return nil, ErrNoStoreClient
	}
	if err := s.authorize(ctx, sess, (*store.Profile).IsAdmin); err != nil {
		return nil, err
	}
	det := store.Detection{
		Location:    location,
		Time:        utils.FormatStoreTime(time.Now(), s.loc),
		ActionTaken: actionTaken,
	}
	inserted, err := s.storeCli.InsertDetection(ctx, det)
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("insert detection failed")
		return nil, err
	}

	go func() {
		defer s.panicRecover("mailer")
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = s.mail.Send(sendCtx, mailer.Alert{
			Location:    inserted.Location,
			Time:        inserted.Time,
			ActionTaken: inserted.ActionTaken,
		})
	}()

	go s.FetchDetections()
	return inserted, nil
}

// SetUserRole changes another user's role. Admin only. The target's
// cached profile is rewritten so a stale role cannot outlive the change.
func (s *baseConsole) SetUserRole(ctx context.Context, sess *auth.Session, userID, role string) error {
	if s.storeCli == nil {
		return ErrNoStoreClient
	}
	if err := s.authorize(ctx, sess, (*store.Profile).IsAdmin); err != nil {
		return err
	}
	if err := s.storeCli.UpdateProfileRole(ctx, userID, role); err != nil {
		s.logger.Error().Err(err).Str("target_id", userID).Str("role", role).Msg("role update failed")
		return err
	}
	_ = s.cache.CacheProfile(ctx, &store.Profile{ID: userID, Role: role})
	s.logger.Info().Str("target_id", userID).Str("role", role).Str("user_id", sess.UserID).Msg("role updated")
	return nil
}

// Profile returns the caller's cached profile when present and refreshes
// it from the store in the background; a cache miss blocks on the fresh
// fetch. The result is for display only.
func (s *baseConsole) Profile(ctx context.Context, sess *auth.Session) *store.Profile {
	if sess == nil {
		return nil
	}
	if cached := s.cache.CachedProfile(ctx, sess.UserID); cached != nil {
		go func() {
			defer s.panicRecover("profile refresh")
			refreshCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if fresh, err := s.storeCli.Profile(refreshCtx, sess.UserID); err == nil {
				_ = s.cache.CacheProfile(refreshCtx, fresh)
			}
		}()
		return cached
	}

	fresh, err := s.storeCli.Profile(ctx, sess.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", sess.UserID).Msg("profile lookup failed")
		return nil
	}
	_ = s.cache.CacheProfile(ctx, fresh)
	return fresh
}

func (s *baseConsole) Settings(ctx context.Context) db.Settings {
	var settings db.Settings
	if err := s.cache.Get(ctx, db.KeySettings, &settings); err != nil {
		return db.DefaultSettings()
	}
	return settings
}

func (s *baseConsole) SaveSettings(ctx context.Context, settings db.Settings) error {
	return s.cache.Set(ctx, db.KeySettings, settings)
}

// Clock is the console's wall time in the fixed civil timezone.
func (s *baseConsole) Clock() string {
	return time.Now().In(s.loc).Format(utils.ClockLayout)
}

func (s *baseConsole) GetConfig() configs.Config {
	return s.config
}
