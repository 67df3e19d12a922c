// Package app assembles the ipecho service: configuration, logger,
// middleware chain and HTTP server.
//
// The middleware order is fixed:
//
//	Recoverer -> requestid -> clientip -> accesslog -> echo routes
//
// so that every access log record carries the request ID and the resolved
// client address.
package app
