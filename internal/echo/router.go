package echo

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/ipecho/handler"
	"github.com/dmitrymomot/ipecho/pkg/httpserver"
)

// Router mounts the echo endpoints and the liveness probe.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.Mount("/", echo.Router(log))
func Router(log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}
	opts := []handler.WrapOption{
		handler.WithErrorHandler(handler.LoggingErrorHandler(log)),
	}

	r := chi.NewRouter()
	r.Use(middleware.GetHead)

	r.NotFound(handler.Wrap(notFound, opts...))
	r.MethodNotAllowed(handler.Wrap(methodNotAllowed, opts...))

	r.Get("/", handler.Wrap(Root, opts...))
	r.Get("/ip", handler.Wrap(IP, opts...))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	return r
}
