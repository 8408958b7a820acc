// Package metrics defines the Prometheus metric set for the refresh cycle.
//
// A degraded refresh (rate source down, currency-derived fields forced null)
// reports success to the caller but is counted separately here so operators
// can tell the two apart.
package metrics
