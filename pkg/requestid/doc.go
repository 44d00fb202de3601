// Package requestid tags every HTTP request with an identifier.
//
// Middleware reuses a well-formed incoming X-Request-ID header or generates a
// UUID, echoes it in the response and stores it in the request context.
// LogExtractor feeds it to the logger so every record of a request carries it.
package requestid
