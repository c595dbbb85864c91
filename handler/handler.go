package handler

import (
	"log/slog"
	"net/http"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/logger"
)

// Func handles a request and returns what to render.
type Func func(r *http.Request) Response

type config struct {
	logger  *slog.Logger
	observe func(apperror.Kind)
}

type Option func(*config)

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorObserver is called with the kind of every error response.
func WithErrorObserver(fn func(apperror.Kind)) Option {
	return func(c *config) {
		c.observe = fn
	}
}

// Wrap adapts fn to net/http. Error responses are logged at warn level for
// client errors and error level for server errors.
func Wrap(fn Func, opts ...Option) http.HandlerFunc {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			resp = Empty()
		}

		if jr, ok := resp.(jsonResponse); ok && jr.err != nil {
			code := jr.body.Error.Code
			switch code {
			case CodeValidation, CodeInvalidRequest, CodeUnauthorized, CodeNotFound:
			default:
				if cfg.observe != nil {
					cfg.observe(apperror.Classify(jr.err).Kind)
				}
			}
			cfg.logger.LogAttrs(r.Context(), logLevel(jr.status), "request failed",
				logger.Error(jr.err),
				logger.ErrorKind(code),
				slog.Int("status_code", jr.status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Component("handler"),
			)
		}

		if err := resp.Render(w, r); err != nil {
			cfg.logger.ErrorContext(r.Context(), "failed to render response",
				logger.Error(err),
				logger.Component("handler"),
			)
		}
	}
}

func logLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}
