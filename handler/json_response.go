package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

// ContentTypeJSON is sent with every JSON response.
const ContentTypeJSON = "application/json"

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

// Render encodes the body before touching the ResponseWriter, so an encoding
// failure can still be reported by the error handler.
func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	payload, err := encodeJSON(j.body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(j.status)
	_, err = w.Write(payload)
	return err
}

// encodeJSON produces compact JSON with no trailing newline and no HTML
// escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithStatus sets custom HTTP status code
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a JSON response whose body is v, serialized as-is.
// Field order follows the struct definition.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorDetail is the body of framework-level error responses.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Error creates a JSON error response with the standard status text as
// detail, e.g. {"detail":"Not Found"}.
func Error(status int) Response {
	return JSON(ErrorDetail{Detail: http.StatusText(status)}, WithStatus(status))
}
