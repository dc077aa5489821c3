package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/console"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/db"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/devicectl"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/mailer"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
)

var logger zerolog.Logger

func init() {
	logger = log.Logger("main")
}

func main() {
	_ = godotenv.Load()

	injector := configs.GetInjector()

	configFile, ok := os.LookupEnv("CONFIG_FILE")
	if !ok {
		logger.Fatal().Msg("Please export CONFIG_FILE")
	}
	cfg, err := configs.LoadConfig(configFile)
	if err != nil {
		logger.Fatal().Msgf("Load config error: %s", err)
	}
	injector.Map(cfg)

	log.InitGlobalLogger(cfg.GetLogLevel(), cfg.GetLogPretty())

	cache, err := db.NewClient(cfg.GetCachePath())
	if err != nil {
		logger.Fatal().Msgf("Failed to init cache: %s", err)
	}
	defer cache.Close()

	storeCli := store.NewClient(cfg.GetStoreConfig())

	var notifier store.Notifier
	if cfg.GetRealtimeConfig().BrokerURL != "" {
		notifier, err = store.NewNotifier(cfg.GetRealtimeConfig())
		if err != nil {
			logger.Warn().Msgf("Realtime channel unavailable, running poll-only: %s", err)
		}
	}

	authCli := auth.NewClient(cfg.GetAuthConfig())
	deviceCli := devicectl.NewClient(cfg.GetControllerConfig())
	mail := mailer.New(cfg.GetMailerConfig())

	c := console.New(cfg, storeCli, notifier, deviceCli, mail, cache)
	c.Start()
	defer c.Stop()

	injector.Map(c)
	injector.Map(authCli)

	err = apis.Run(injector, cfg)
	if err != nil {
		logger.Fatal().Msgf("Failed to run api server: %s", err)
	}
}
