// Package source holds the external data source adapters: the REST Countries
// client and the exchange-rate client, plus the raw wire types they return.
//
// The adapters are a pure I/O boundary. They return transport errors as-is;
// classifying them (abort vs degraded refresh) is the reconcile engine's job.
package source
