// Package countries implements the reconciliation and enrichment engine and
// the query facade over the persisted country record set.
//
// # Refresh cycle
//
// A refresh fetches the country list and the exchange-rate table
// concurrently, enriches each raw country (currency resolution, GDP
// estimate), and applies the result against the store in one transaction:
// existing records matched by trimmed lowercased name are fully replaced,
// unknown names are inserted with fresh identities, and the singleton
// refresh metadata is written last. Records absent from the new fetch are
// left untouched; deletion is a separate explicit operation.
//
// # Currency policy
//
// Countries without any currency get a nil code, nil rate, and an estimate
// of exactly zero. Countries whose first listed currency cannot be resolved
// against the rate table get a nil rate and a nil estimate. The zero/null
// distinction is deliberate and load-bearing.
//
// # Failure policy
//
// Country source down: the refresh aborts with ErrSourceUnavailable and the
// store untouched. Rate source down: the refresh proceeds degraded, with all
// currency-derived fields forced null and the outcome flagged in logs and
// metrics. At most one refresh runs at a time; concurrent requests get
// ErrRefreshInFlight.
package countries
