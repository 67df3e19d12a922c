// Package handler provides small building blocks for HTTP handlers that
// return values instead of writing to the ResponseWriter directly.
//
// A HandlerFunc inspects the request and returns a Response; Wrap adapts it
// to http.HandlerFunc and routes render failures to an ErrorHandler:
//
//	func status(r *http.Request) handler.Response {
//		return handler.JSON(map[string]string{"status": "ok"})
//	}
//
//	r := chi.NewRouter()
//	r.Get("/status", handler.Wrap(status))
//
// # JSON
//
// JSON renders compact output without a trailing newline and without HTML
// escaping, so the bytes on the wire are exactly the serialized value.
// Error(status) renders the {"detail": "..."} body used for 404 and 405
// answers.
//
// # Decorators
//
// Decorators wrap a HandlerFunc. They are applied in order, the first one
// being the outermost.
package handler
