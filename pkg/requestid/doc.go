// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware keeps a client supplied X-Request-ID when it is 1–128 characters
// of letters, digits, '-' or '_', and otherwise generates a UUIDv4. The ID is
// echoed in the response header and stored in the request context, where
// FromContext and LoggerExtractor pick it up.
package requestid
