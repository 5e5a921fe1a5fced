// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request logging, CORS, secure headers, tracing and panic
// recovery. GlobalErrorHandler is the single place where errors become
// JSON responses.
package middleware
