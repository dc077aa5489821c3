package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
)

// Logger returns a named component logger. Every package grabs its own
// logger once at init time and tags all of its output with the component
// field.
func Logger(component string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// InitGlobalLogger applies the configured log level and output format.
// Pretty output is meant for a terminal, the default is plain JSON lines.
func InitGlobalLogger(lvl string, pretty bool) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(lvl) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}
	if pretty {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	zerolog.SetGlobalLevel(level)
}
