// Package clientip determines the address an HTTP caller appears to come
// from.
//
// Resolution has three steps:
//
//  1. X-Forwarded-For: if the header is present and its raw value is not
//     empty, the first comma-separated element is trimmed and returned.
//     Later elements are ignored and nothing is validated.
//  2. Transport peer: the host part of the connection's remote address.
//  3. "unknown": when neither source is available.
//
// Resolve is the framework-independent core. It depends only on the
// Headers capability and an optional peer host, so it can be driven from
// net/http, tests or the command line alike. GetIP wires it to an
// *http.Request.
//
// # Usage
//
//	import "github.com/dmitrymomot/ipecho/pkg/clientip"
//
//	// Inside a handler
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIP(r)
//	    fmt.Fprintln(w, ip)
//	}
//
//	// As middleware
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    fmt.Fprintln(w, clientip.FromRequest(r))
//	})
//
// # Error Handling
//
// There is none. Every combination of inputs maps to a non-empty string
// except a forwarding header whose first element is blank, which is echoed
// back as the empty string.
package clientip
