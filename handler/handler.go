package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ipecho/pkg/logger"
)

// HandlerFunc handles a request and returns the Response to render.
//
// Example:
//
//	h := handler.HandlerFunc(func(r *http.Request) handler.Response {
//		return handler.JSON(map[string]string{"status": "ok"})
//	})
//	r.Get("/status", handler.Wrap(h))
type HandlerFunc func(r *http.Request) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from rendering.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator func(HandlerFunc) HandlerFunc

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
	decorators   []Decorator
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators(decorators ...Decorator) WrapOption {
	return func(c *wrapConfig) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// LoggingErrorHandler logs the failure and answers with a plain 500.
func LoggingErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "failed to render response",
			logger.Error(err),
			slog.String("path", r.URL.Path),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Wrap converts a HandlerFunc to http.HandlerFunc.
//
//	r.Get("/ip", handler.Wrap(ipHandler,
//		handler.WithErrorHandler(handler.LoggingErrorHandler(log)),
//	))
func Wrap(h HandlerFunc, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Apply decorators in reverse order so first decorator is outermost
	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		response := final(r)
		if response == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
