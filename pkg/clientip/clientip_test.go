package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ipecho/pkg/clientip"
)

// mapHeaders is a Headers implementation detached from net/http.
type mapHeaders map[string]string

func (m mapHeaders) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func peer(s string) *string { return &s }

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		headers  clientip.Headers
		peer     *string
		expected string
	}{
		{
			name:     "first element of forwarded chain",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "a, b, c"},
			peer:     peer("10.0.0.1"),
			expected: "a",
		},
		{
			name:     "single forwarded entry is trimmed",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: " 10.0.0.5 "},
			expected: "10.0.0.5",
		},
		{
			name:     "empty forwarded header falls back to peer",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: ""},
			peer:     peer("203.0.113.9"),
			expected: "203.0.113.9",
		},
		{
			name:     "empty forwarded header without peer",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: ""},
			expected: clientip.Unknown,
		},
		{
			name:     "no header and no peer",
			headers:  mapHeaders{},
			expected: "unknown",
		},
		{
			name:     "no header with peer",
			headers:  mapHeaders{},
			peer:     peer("198.51.100.2"),
			expected: "198.51.100.2",
		},
		{
			name:     "nil headers",
			headers:  nil,
			peer:     peer("198.51.100.2"),
			expected: "198.51.100.2",
		},
		{
			name:     "whitespace-only first element is returned empty",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "   , 1.2.3.4"},
			peer:     peer("10.0.0.1"),
			expected: "",
		},
		{
			name:     "whitespace-only header is not treated as absent",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "   "},
			peer:     peer("10.0.0.1"),
			expected: "",
		},
		{
			name:     "leading comma yields empty first element",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: ",1.2.3.4"},
			expected: "",
		},
		{
			name:     "garbage is echoed without validation",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "not-an-ip, 1.2.3.4"},
			expected: "not-an-ip",
		},
		{
			name:     "ipv6 is not normalized",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "2001:DB8:0:0::1"},
			expected: "2001:DB8:0:0::1",
		},
		{
			name:     "inner whitespace is kept",
			headers:  mapHeaders{clientip.HeaderXForwardedFor: "\t1.2 .3.4 ,5.6.7.8"},
			expected: "1.2 .3.4",
		},
		{
			name:     "peer is returned verbatim",
			headers:  mapHeaders{},
			peer:     peer(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, clientip.Resolve(tt.headers, tt.peer))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	h := mapHeaders{clientip.HeaderXForwardedFor: "192.0.2.7, 10.0.0.1"}
	p := peer("10.0.0.2")

	first := clientip.Resolve(h, p)
	second := clientip.Resolve(h, p)

	assert.Equal(t, first, second)
	assert.Equal(t, "192.0.2.7", first)
}

func TestHTTPHeaders(t *testing.T) {
	t.Parallel()

	t.Run("case insensitive lookup", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"x-forwarded-for", "X-FORWARDED-FOR", "X-Forwarded-For"} {
			h := http.Header{}
			h.Set(name, "192.0.2.1")

			v, ok := clientip.HTTPHeaders(h).Lookup("x-forwarded-for")
			require.True(t, ok, name)
			assert.Equal(t, "192.0.2.1", v, name)
		}
	})

	t.Run("absent header", func(t *testing.T) {
		t.Parallel()
		v, ok := clientip.HTTPHeaders(http.Header{}).Lookup(clientip.HeaderXForwardedFor)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("present but empty", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		h.Set(clientip.HeaderXForwardedFor, "")

		v, ok := clientip.HTTPHeaders(h).Lookup(clientip.HeaderXForwardedFor)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("repeated header returns first value", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		h.Add(clientip.HeaderXForwardedFor, "192.0.2.1")
		h.Add(clientip.HeaderXForwardedFor, "192.0.2.2")

		v, ok := clientip.HTTPHeaders(h).Lookup(clientip.HeaderXForwardedFor)
		assert.True(t, ok)
		assert.Equal(t, "192.0.2.1", v)
	})
}

func TestPeerHost(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		remoteAddr string
		expected   *string
	}{
		{name: "empty", remoteAddr: "", expected: nil},
		{name: "ipv4 with port", remoteAddr: "198.51.100.2:54321", expected: peer("198.51.100.2")},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:8080", expected: peer("2001:db8::1")},
		{name: "bare ipv4", remoteAddr: "198.51.100.2", expected: peer("198.51.100.2")},
		{name: "hostname with port", remoteAddr: "testclient:1234", expected: peer("testclient")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := clientip.PeerHost(tt.remoteAddr)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestGetIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "forwarded header wins over remote address",
			headers:    map[string]string{"x-forwarded-for": "1.2.3.4,5.6.7.8"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "1.2.3.4",
		},
		{
			name:       "remote address fallback",
			remoteAddr: "127.0.0.1:8080",
			expected:   "127.0.0.1",
		},
		{
			name:       "empty forwarded header",
			headers:    map[string]string{"X-Forwarded-For": ""},
			remoteAddr: "203.0.113.9:443",
			expected:   "203.0.113.9",
		},
		{
			name:       "other proxy headers are ignored",
			headers:    map[string]string{"X-Real-IP": "192.168.1.1", "CF-Connecting-IP": "203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:     "nothing known",
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := createTestRequest(tt.headers, tt.remoteAddr)
			assert.Equal(t, tt.expected, clientip.GetIP(req))
		})
	}
}

func createTestRequest(headers map[string]string, remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return req
}
