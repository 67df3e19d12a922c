package clientip

import (
	"net"
	"net/http"
	"strings"
)

const (
	// HeaderXForwardedFor is the only forwarding header consulted.
	HeaderXForwardedFor = "X-Forwarded-For"

	// Unknown is reported when neither the forwarding header nor the
	// transport peer yields an address.
	Unknown = "unknown"
)

// Headers is the one capability the resolver needs from a request:
// a case-insensitive lookup of a named header.
type Headers interface {
	Lookup(name string) (string, bool)
}

// HTTPHeaders adapts http.Header to Headers.
// When a header is repeated, the first value wins.
type HTTPHeaders http.Header

// Lookup implements Headers.
func (h HTTPHeaders) Lookup(name string) (string, bool) {
	values := http.Header(h).Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Resolve returns the address to report for a request.
//
// Resolution order:
//  1. X-Forwarded-For, when present with a non-empty raw value: the first
//     comma-separated element, whitespace-trimmed. The element is returned
//     as-is, even if it is empty after trimming or is not an IP address.
//  2. The transport peer host, when peer is non-nil.
//  3. Unknown.
//
// Resolve never fails and has no side effects.
func Resolve(h Headers, peer *string) string {
	if h != nil {
		if forwarded, ok := h.Lookup(HeaderXForwardedFor); ok && len(forwarded) > 0 {
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}
	}

	if peer != nil {
		return *peer
	}

	return Unknown
}

// PeerHost extracts the host part of a transport address such as
// http.Request.RemoteAddr. It returns nil when no address is known.
// Addresses without a port are returned unchanged.
func PeerHost(remoteAddr string) *string {
	if remoteAddr == "" {
		return nil
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// Not host:port, assume it's already a bare host
		return &remoteAddr
	}
	return &host
}

// GetIP resolves the client address of an incoming request.
func GetIP(r *http.Request) string {
	return Resolve(HTTPHeaders(r.Header), PeerHost(r.RemoteAddr))
}
