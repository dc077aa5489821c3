package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIServicePort       = 8080
	defaultPollSecs             = 5
	defaultRecentLimit          = 5
	defaultDevicePollSecs       = 3
	defaultPerimeterLoadTimeout = 5
	defaultStoreTimeoutSecs     = 10
	defaultTimeZone             = "Africa/Johannesburg"
	defaultCachePath            = "data/console.db"
)

// StoreConfig points the store client at the external data API.
type StoreConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// RealtimeConfig is the MQTT channel carrying store change notifications
// and the alarm state topic.
type RealtimeConfig struct {
	BrokerURL   string `yaml:"broker_url"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
}

// AuthConfig points at the external identity provider.
type AuthConfig struct {
	BaseURL   string `yaml:"base_url"`
	JWTSecret string `yaml:"jwt_secret"`
}

// ControllerConfig is the deterrent device controller endpoint.
type ControllerConfig struct {
	BaseURL  string `yaml:"base_url"`
	PollSecs int    `yaml:"poll_secs"`
}

// MailerConfig is the fire-and-forget detection alert webhook.
type MailerConfig struct {
	WebhookURL  string `yaml:"webhook_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

type Config interface {
	GetAPIServicePort() int
	GetEnablePprof() bool
	GetLogLevel() string
	GetLogPretty() bool
	GetTimeZone() string
	GetPollSecs() int
	GetRecentLimit() int
	GetPerimeterLoadTimeoutSecs() int
	GetCachePath() string
	GetStoreConfig() StoreConfig
	GetRealtimeConfig() RealtimeConfig
	GetAuthConfig() AuthConfig
	GetControllerConfig() ControllerConfig
	GetMailerConfig() MailerConfig
}

type yamlConfig struct {
	APIServicePort       int              `yaml:"api_service_port"`
	EnablePprof          bool             `yaml:"enable_pprof"`
	LogLevel             string           `yaml:"log_level"`
	LogPretty            bool             `yaml:"log_pretty"`
	TimeZone             string           `yaml:"timezone"`
	PollSecs             int              `yaml:"poll_secs"`
	RecentLimit          int              `yaml:"recent_limit"`
	PerimeterLoadTimeout int              `yaml:"perimeter_load_timeout_secs"`
	CachePath            string           `yaml:"cache_path"`
	Store                StoreConfig      `yaml:"store"`
	Realtime             RealtimeConfig   `yaml:"realtime"`
	Auth                 AuthConfig       `yaml:"auth"`
	Controller           ControllerConfig `yaml:"controller"`
	Mailer               MailerConfig     `yaml:"mailer"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := &yamlConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.applyDefaults()
	if cfg.Store.BaseURL == "" {
		return nil, fmt.Errorf("store.base_url is required")
	}
	return cfg, nil
}

// NewEmptyConfig returns a config carrying only the defaults. Meant
// for tests that need a Config but no real endpoints.
func NewEmptyConfig() Config {
	cfg := &yamlConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *yamlConfig) applyDefaults() {
	if c.APIServicePort == 0 {
		c.APIServicePort = defaultAPIServicePort
	}
	if c.PollSecs == 0 {
		c.PollSecs = defaultPollSecs
	}
	if c.RecentLimit == 0 {
		c.RecentLimit = defaultRecentLimit
	}
	if c.PerimeterLoadTimeout == 0 {
		c.PerimeterLoadTimeout = defaultPerimeterLoadTimeout
	}
	if c.TimeZone == "" {
		c.TimeZone = defaultTimeZone
	}
	if c.CachePath == "" {
		c.CachePath = defaultCachePath
	}
	if c.Store.TimeoutSecs == 0 {
		c.Store.TimeoutSecs = defaultStoreTimeoutSecs
	}
	if c.Controller.PollSecs == 0 {
		c.Controller.PollSecs = defaultDevicePollSecs
	}
	if c.Mailer.TimeoutSecs == 0 {
		c.Mailer.TimeoutSecs = defaultStoreTimeoutSecs
	}
}

func (c *yamlConfig) GetAPIServicePort() int { return c.APIServicePort }
func (c *yamlConfig) GetEnablePprof() bool   { return c.EnablePprof }
func (c *yamlConfig) GetLogLevel() string    { return c.LogLevel }
func (c *yamlConfig) GetLogPretty() bool     { return c.LogPretty }
func (c *yamlConfig) GetTimeZone() string    { return c.TimeZone }
func (c *yamlConfig) GetPollSecs() int       { return c.PollSecs }
func (c *yamlConfig) GetRecentLimit() int    { return c.RecentLimit }

func (c *yamlConfig) GetPerimeterLoadTimeoutSecs() int { return c.PerimeterLoadTimeout }
func (c *yamlConfig) GetCachePath() string             { return c.CachePath }

func (c *yamlConfig) GetStoreConfig() StoreConfig           { return c.Store }
func (c *yamlConfig) GetRealtimeConfig() RealtimeConfig     { return c.Realtime }
func (c *yamlConfig) GetAuthConfig() AuthConfig             { return c.Auth }
func (c *yamlConfig) GetControllerConfig() ControllerConfig { return c.Controller }
func (c *yamlConfig) GetMailerConfig() MailerConfig         { return c.Mailer }
