// Package logger configures log/slog for seqsort binaries and carries
// structured logging values through context.Context.
//
// Library packages never log. Only entry points (see the script package and
// cmd/seqsort) call ConfigureLogging and Get.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	seqerrors "github.com/amp-labs/seqsort/errors"
)

// Used for tagging every log line with the binary that produced it.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	var handler slog.Handler

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Third party packages may still use the old log package; route it into slog.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging for the application from the
// environment (LOG_JSON, LOG_LEVEL, LEGACY_LOG_LEVEL, LOG_OUTPUT), then
// applies opts on top. Unparseable variables fall back to their defaults and
// are reported as a single warning once the logger is in place.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	var problems seqerrors.Collection

	options := Options{
		Subsystem:   app,
		JSON:        envBool("LOG_JSON", false, &problems),
		MinLevel:    envLevel("LOG_LEVEL", slog.LevelInfo, &problems),
		LegacyLevel: envLevel("LEGACY_LOG_LEVEL", slog.LevelInfo, &problems),
		Output:      envOutput("LOG_OUTPUT", os.Stdout, &problems),
	}

	for _, o := range opts {
		o(&options)
	}

	logger := ConfigureLoggingWithOptions(options)

	if err := problems.GetError(); err != nil {
		logger.WarnContext(ctx, "ignoring invalid logging configuration", "error", err)
	}

	return logger
}

func envBool(key string, defl bool, problems *seqerrors.Collection) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defl
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		problems.Add(fmt.Errorf("%s: %w", key, err))

		return defl
	}

	return val
}

func envLevel(key string, defl slog.Level, problems *seqerrors.Collection) slog.Level {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defl
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		problems.Add(fmt.Errorf("%s: %w", key, err))

		return defl
	}

	return lvl
}

func envOutput(key string, defl io.Writer, problems *seqerrors.Collection) io.Writer {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defl
	}

	switch raw {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	default:
		problems.Add(fmt.Errorf("%s: %w: %q", key, ErrInvalidLogOutput, raw))

		return defl
	}
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed (no log output will be produced).
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem adds a subsystem to the context. If the subsystem is not provided, the default subsystem
// will be used. The default subsystem is set by the ConfigureLogging function.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the default subsystem will be used.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// getRealContext extracts the first non-nil context from a variadic list.
// If no context is provided or all are nil, it returns context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// nullHandler is a slog.Handler implementation that discards all log output.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem and any values attached to the
// context with With. A muted context yields a logger that discards everything.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	if vals, ok := ctx.Value(contextKey("loggerValues")).([]any); ok {
		return vals
	}

	return nil
}
