// Package echo serves the caller's perceived IP address.
//
// Routes:
//
//	GET /       {"message":"ok","ip":"<address>"}
//	GET /ip     {"ip":"<address>"}
//	GET /healthz
//
// The address comes from clientip.FromRequest: the first X-Forwarded-For
// element when that header is set, otherwise the connection peer host,
// otherwise "unknown". Unknown paths answer 404 {"detail":"Not Found"} and
// unsupported methods on known paths answer 405
// {"detail":"Method Not Allowed"}.
package echo
