// Package log configures the slog logger of the dashline command: a console
// handler on stderr and an optional rotating JSON file.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/32bitkid/dashline/internal/version"
)

// Options controls logger initialization. FromEnv reads them from
//   - DASHLINE_LOG_LEVEL=debug|info|warn|error
//   - DASHLINE_LOG_FORMAT=console|json
//   - DASHLINE_LOG_FILE=<path>
type Options struct {
	Level  string
	Format string // "console" or "json"
	File   string // rotated with lumberjack when set

	// Console defaults to os.Stderr.
	Console io.Writer
}

const (
	EnvLevel  = "DASHLINE_LOG_LEVEL"
	EnvFormat = "DASHLINE_LOG_FORMAT"
	EnvFile   = "DASHLINE_LOG_FILE"
)

var (
	mu     sync.RWMutex
	logger *slog.Logger
	file   *lj.Logger
)

// L returns the application logger, initializing it from the environment
// on first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Init(FromEnv())
}

// Init replaces the application logger and slog.Default.
func Init(opts Options) *slog.Logger {
	lvl := parseLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(console, hopts)
	} else {
		h = slog.NewTextHandler(console, hopts)
	}

	var w *lj.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		w = &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		h = multiHandler(h, slog.NewJSONHandler(w, hopts))
	}

	l := slog.New(h).With(slog.String("app", "dashline"), slog.String("ver", version.Version))

	mu.Lock()
	if file != nil {
		file.Close()
	}
	logger, file = l, w
	mu.Unlock()
	slog.SetDefault(l)
	return l
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func FromEnv() Options {
	return Options{
		Level:  getenv(EnvLevel, "info"),
		Format: getenv(EnvFormat, "console"),
		File:   os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns a logger with the component attribute set.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func multiHandler(handlers ...slog.Handler) slog.Handler { return &multi{hs: handlers} }

// multi fans records out to every handler.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: hs}
}

func (m *multi) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithGroup(name)
	}
	return &multi{hs: hs}
}
