package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"

	"github.com/oaiiae/contacts-bot/handlers"
	"github.com/oaiiae/contacts-bot/router"
)

// InternalError is the reply to a command whose handler panicked.
const InternalError = "Internal error."

// ctxlog is a [context.Context] key and acts as a virtual package for operations related to it.
type ctxlog struct{}

// loggerMiddleware returns a middleware that sets a [slog.Logger] tagged with a
// command id in the [context.Context] and logs the command after it has terminated.
func (key ctxlog) loggerMiddleware(parent *slog.Logger) router.Middleware {
	return func(c *router.Context, next func(*router.Context)) {
		logger := parent.With("cmd-id", uuid.NewString())

		start := time.Now()
		c.WithValue(key, logger.WithGroup("cmd").With("verb", c.Verb))
		next(c)

		logger.LogAttrs(context.Background(), slog.LevelInfo, "command handled",
			slog.String("verb", c.Verb),
			slog.Int("args", len(c.Args)),
			slog.String("status", handlers.Status(c.Err)),
			slog.Duration("dur", time.Since(start)),
		)
	}
}

// recoverMiddleware returns a middleware that recovers and logs the value from panic.
// The reply becomes [InternalError].
func (key ctxlog) recoverMiddleware(fallback *slog.Logger) router.Middleware {
	return func(c *router.Context, next func(*router.Context)) {
		defer func() {
			v := recover()
			if v != nil {
				logger, ok := c.Context().Value(key).(*slog.Logger)
				if !ok {
					logger = fallback
				}
				logger.LogAttrs(context.Background(), slog.LevelError, "panic occurred", slog.Any("recovered", v))
				c.Reply, c.Err = InternalError, fmt.Errorf("panic: %v", v)
			}
		}()
		next(c)
	}
}

// errorHandler returns a function that gets the [slog.Logger] from [context.Context] and logs the error.
// User mistakes are logged at info, anything else at error.
func (key ctxlog) errorHandler(fallback *slog.Logger) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		level := slog.LevelError
		status := handlers.Status(err)
		switch status {
		case "not_found", "invalid":
			level = slog.LevelInfo
		}

		logger, ok := ctx.Value(key).(*slog.Logger)
		if !ok {
			logger = fallback
		}
		logger.LogAttrs(context.Background(), level, "command failed",
			slog.Any("err", err),
			slog.String("status", status),
		)
	}
}

func meterCommands(set *metrics.Set) router.Middleware {
	buckets := metrics.ExponentialBuckets(1e-6, 10, 6) //nolint: mnd // 1µs to 100ms

	return func(c *router.Context, next func(*router.Context)) {
		start := time.Now()
		next(c)

		command := c.Route
		if command == "" {
			command = "unknown"
		}
		labels := joinQuote("{command=", command, ",status=", handlers.Status(c.Err), "}")
		set.GetOrCreateCounter("bot_commands_total" + labels).Inc()
		set.GetOrCreatePrometheusHistogramExt(
			joinQuote("bot_command_duration_seconds{command=", command, "}"), buckets,
		).UpdateDuration(start)
	}
}
