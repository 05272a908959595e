// Package logger configures slog for the collate tools and hands out loggers
// decorated with values carried in a context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/collate/envutil"
)

// subsystem is the default subsystem name, set by ConfigureLogging.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which replaces global loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

type (
	loggerKey    struct{}
	mutedKey     struct{}
	subsystemKey struct{}
	valuesKey    struct{}
)

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog default
// and redirects the standard log package into it. It returns the new default logger.
// Errors created with AnnotateError have their attributes expanded when logged.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &slogErrorLogger{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging from the environment:
// LOG_JSON (default false), LOG_LEVEL (default info), LEGACY_LOG_LEVEL (default info)
// and LOG_OUTPUT (stdout or stderr, default stderr). Options are applied afterwards.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT", envutil.Default("stderr")),
		func(outName string) (io.Writer, error) {
			switch outName {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
			}
		}).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithLogger makes Get return logger (plus the usual decorations) instead of
// the slog default for this context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(orBackground(ctx), loggerKey{}, logger)
}

// WithMuted suppresses all output from loggers obtained with this context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return context.WithValue(orBackground(ctx), mutedKey{}, muted)
}

// WithSubsystem overrides the default subsystem for this context.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return context.WithValue(orBackground(ctx), subsystemKey{}, subsystem)
}

// GetSubsystem returns the subsystem from the context, or the default one.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := orBackground(ctx).Value(subsystemKey{}).(string); ok {
		return sub
	}

	sub, _ := subsystem.Load().(string)

	return sub
}

// With returns a context whose loggers carry values in addition to any added before.
func With(ctx context.Context, values ...any) context.Context {
	ctx = orBackground(ctx)
	if len(values) == 0 {
		return ctx
	}

	prev := getValues(ctx)
	vals := make([]any, 0, len(prev)+len(values))
	vals = append(vals, prev...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey{}, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(valuesKey{}).([]any)

	return vals
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

var discard = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

// Get returns the context's logger, or the slog default, decorated with the
// subsystem and any values added with With. Only the first non-nil context is
// consulted.
func Get(ctx ...context.Context) *slog.Logger {
	var realCtx context.Context

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	realCtx = orBackground(realCtx)

	if muted, _ := realCtx.Value(mutedKey{}).(bool); muted {
		return discard
	}

	logger, _ := realCtx.Value(loggerKey{}).(*slog.Logger)
	if logger == nil {
		logger = slog.Default()
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
