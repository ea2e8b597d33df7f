// Package logging configures the zerolog logger used by the richfmt CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options describes logger configuration supplied at startup.
type Options struct {
	// Verbosity is the number of -v flags: 0 warn, 1 info, 2 debug, 3+ trace.
	Verbosity int
	// JSON writes structured lines instead of the human-readable console
	// format.
	JSON bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// LevelFor maps a verbosity count to a log level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New builds a logger from opts without touching global state.
func New(opts Options) zerolog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var output io.Writer = writer
	if !opts.JSON {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	logger := zerolog.New(output).Level(LevelFor(opts.Verbosity)).With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Setup installs a logger built from opts as the global logger.
func Setup(opts Options) {
	log.Logger = New(opts)
	log.Debug().Int("verbosity", opts.Verbosity).Bool("json", opts.JSON).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
