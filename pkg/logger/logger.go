// Package logger holds the process logger of the inventory API.
//
// cmd/server calls Init once with the configured level; packages that are
// not handed a logger by their constructor use Component to get a child
// tagged with their name. Output is JSON unless Pretty is set.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger.
type Options struct {
	Level   string    // trace, debug, info, warn or error; anything else means info
	Pretty  bool      // console output for local development
	Service string    // added to every event as "service"
	Output  io.Writer // stdout when nil
}

var (
	mu      sync.Mutex
	current *zerolog.Logger
)

// New builds a logger from opts without touching the process logger.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(levelFor(opts.Level)).With().Timestamp().Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

// Init installs the process logger. Later calls return the installed one
// unchanged until Reset.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opts)
		zerolog.SetGlobalLevel(l.GetLevel())
		current = &l
	}
	return *current
}

// Get returns the process logger. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		panic("logger: Get called before Init")
	}
	return *current
}

// Component returns the process logger with a "component" field, e.g.
// "http" or "bootstrap".
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset forgets the process logger. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	current = nil
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func levelFor(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	switch lvl, err := zerolog.ParseLevel(s); {
	case err != nil, lvl < zerolog.TraceLevel, lvl > zerolog.ErrorLevel, s == "":
		return zerolog.InfoLevel
	default:
		return lvl
	}
}
