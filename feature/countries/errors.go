package countries

import "errors"

// Sentinel errors for the countries feature. The reconcile engine and store
// classify failures into these; the HTTP handler maps them to status codes.
var (
	// ErrSourceUnavailable means the country source was unreachable or
	// returned malformed data. The refresh aborted without touching the
	// store; the caller may retry.
	ErrSourceUnavailable = errors.New("external data source unavailable")

	// ErrRefreshInFlight means another refresh cycle holds the writer lock.
	ErrRefreshInFlight = errors.New("a refresh is already in progress")

	// ErrNotFound is the normal negative result for lookups and deletes by
	// name. It is not a system fault and is never error-logged.
	ErrNotFound = errors.New("country not found")

	// ErrInvalidSort rejects an unknown sort key before the store is touched.
	ErrInvalidSort = errors.New("invalid sort key")
)
