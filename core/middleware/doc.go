// Package middleware groups the HTTP middleware used by the server:
// rayid for request correlation and auth for API-key protection of
// mutating endpoints.
package middleware
