// Package accesslog records one structured log line per HTTP request.
//
// Each record carries the method, path, status, response size and duration.
// Request-scoped attributes such as the request ID and client address are
// added by the logger's context extractors, so install requestid and
// clientip middleware before this one:
//
//	r.Use(requestid.Middleware)
//	r.Use(clientip.Middleware)
//	r.Use(accesslog.Middleware(log))
//
// Responses with a 5xx status are logged at error level, everything else at
// info level.
package accesslog
