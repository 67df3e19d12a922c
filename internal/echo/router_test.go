package echo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ipecho/internal/echo"
	"github.com/dmitrymomot/ipecho/pkg/clientip"
)

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	echo.Router(nil).ServeHTTP(rec, req)
	return rec
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		xff        []string
		remoteAddr string
		wantBody   string
	}{
		{
			name:       "ip from forwarded header",
			path:       "/ip",
			xff:        []string{"1.2.3.4"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"1.2.3.4"}`,
		},
		{
			name:       "ip first element trimmed",
			path:       "/ip",
			xff:        []string{"  1.2.3.4 , 5.6.7.8"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"1.2.3.4"}`,
		},
		{
			name:       "ip falls back to peer",
			path:       "/ip",
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"10.0.0.5"}`,
		},
		{
			name:       "ip ipv6 peer",
			path:       "/ip",
			remoteAddr: "[2001:db8::1]:443",
			wantBody:   `{"ip":"2001:db8::1"}`,
		},
		{
			name:       "ip empty header uses peer",
			path:       "/ip",
			xff:        []string{""},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"10.0.0.5"}`,
		},
		{
			name:       "ip whitespace header yields empty",
			path:       "/ip",
			xff:        []string{"   "},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":""}`,
		},
		{
			name:       "ip leading comma yields empty",
			path:       "/ip",
			xff:        []string{",1.2.3.4"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":""}`,
		},
		{
			name:       "ip first of repeated headers",
			path:       "/ip",
			xff:        []string{"1.1.1.1", "2.2.2.2"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"1.1.1.1"}`,
		},
		{
			name:       "ip no peer no header",
			path:       "/ip",
			wantBody:   `{"ip":"unknown"}`,
		},
		{
			name:       "ip unvalidated value passes through",
			path:       "/ip",
			xff:        []string{"<script>&"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"<script>&"}`,
		},
		{
			name:       "root with header",
			path:       "/",
			xff:        []string{"9.9.9.9"},
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"message":"ok","ip":"9.9.9.9"}`,
		},
		{
			name:     "root no peer no header",
			path:     "/",
			wantBody: `{"message":"ok","ip":"unknown"}`,
		},
		{
			name:       "query parameters ignored",
			path:       "/ip?ip=8.8.8.8",
			remoteAddr: "10.0.0.5:5000",
			wantBody:   `{"ip":"10.0.0.5"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.RemoteAddr = tt.remoteAddr
			for _, v := range tt.xff {
				req.Header.Add("X-Forwarded-For", v)
			}

			rec := serve(t, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestEndpointsIgnoreOtherHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.5:5000"
	req.Header.Set("X-Real-IP", "7.7.7.7")
	req.Header.Set("CF-Connecting-IP", "6.6.6.6")
	req.Header.Set("Forwarded", "for=5.5.5.5")

	rec := serve(t, req)
	assert.Equal(t, `{"ip":"10.0.0.5"}`, rec.Body.String())
}

func TestEndpointsPreferMiddlewareValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req = req.WithContext(clientip.SetIPToContext(req.Context(), "4.4.4.4"))

	rec := serve(t, req)
	assert.Equal(t, `{"ip":"4.4.4.4"}`, rec.Body.String())
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, `{"detail":"Not Found"}`},
		{"post ip", http.MethodPost, "/ip", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`},
		{"delete root", http.MethodDelete, "/", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHeadServedByGet(t *testing.T) {
	t.Parallel()

	rec := serve(t, httptest.NewRequest(http.MethodHead, "/ip", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := serve(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
