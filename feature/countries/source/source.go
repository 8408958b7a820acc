package source

import "context"

// RawCurrency is one entry of a country's currency list as returned by the
// country source. List order is authoritative; the first code wins.
type RawCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RawCountry is a country entry as returned by the country source, before
// enrichment.
type RawCountry struct {
	Name       string        `json:"name"`
	Capital    string        `json:"capital"`
	Region     string        `json:"region"`
	Population int64         `json:"population"`
	FlagUrl    string        `json:"flag"`
	Currencies []RawCurrency `json:"currencies"`
}

// RateTable maps a currency code to its rate relative to the base currency
// (USD). It is fetched fresh per refresh and never persisted.
type RateTable map[string]float64

// CountrySource fetches the full raw country list.
type CountrySource interface {
	FetchAll(ctx context.Context) ([]RawCountry, error)
}

// RateSource fetches the current exchange-rate table.
type RateSource interface {
	FetchRates(ctx context.Context) (RateTable, error)
}
