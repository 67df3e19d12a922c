package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/ipecho/internal/echo"
	"github.com/dmitrymomot/ipecho/pkg/accesslog"
	"github.com/dmitrymomot/ipecho/pkg/clientip"
	"github.com/dmitrymomot/ipecho/pkg/environment"
	"github.com/dmitrymomot/ipecho/pkg/httpserver"
	"github.com/dmitrymomot/ipecho/pkg/logger"
	"github.com/dmitrymomot/ipecho/pkg/requestid"
)

// NewLogger builds the service logger from cfg. Records emitted with a
// request context carry request_id and client_ip.
func NewLogger(cfg Config, opts ...logger.Option) (*slog.Logger, error) {
	base := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		base = append(base, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		base = append(base, logger.WithFormat(format))
	}

	return logger.New(append(base, opts...)...), nil
}

// NewHandler returns the full HTTP handler: middleware chain plus routes.
func NewHandler(log *slog.Logger) http.Handler {
	return chi.Chain(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		accesslog.Middleware(log),
	).Handler(echo.Router(log))
}

// Run serves the service on cfg.HTTP.Addr until ctx is cancelled or the
// process is signalled.
func Run(ctx context.Context, cfg Config, log *slog.Logger, opts ...httpserver.Option) error {
	return newServer(cfg, log, opts...).Run(ctx, NewHandler(log))
}

// Serve is Run on a listener owned by the caller.
func Serve(ctx context.Context, ln net.Listener, cfg Config, log *slog.Logger, opts ...httpserver.Option) error {
	return newServer(cfg, log, opts...).Serve(ctx, ln, NewHandler(log))
}

func newServer(cfg Config, log *slog.Logger, opts ...httpserver.Option) *httpserver.Server {
	log = log.With(logger.Component("http"))
	return httpserver.NewFromConfig(cfg.HTTP, append([]httpserver.Option{httpserver.WithLogger(log)}, opts...)...)
}
