package countries

import (
	"strings"
	"time"

	"country-pulse/feature/countries/models"
	"country-pulse/feature/countries/source"
)

// Resolution holds the outcome of the currency resolution policy for a
// single country.
type Resolution struct {
	Code *string
	Rate *float64
	// ZeroGDP is set for the no-currency branch: the estimate is exactly
	// zero, as opposed to nil for an unresolvable currency.
	ZeroGDP bool
}

// ResolveCurrency applies the currency edge-case policy:
//
//   - empty currency list (or first entry without a code): no currency at
//     all; the GDP estimate is trivially zero
//   - first listed code wins; source order is authoritative, never sorted
//   - code absent from the rate table (including a nil table in degraded
//     mode): rate and estimate stay nil
//   - zero or negative rate: fail closed, same as unresolvable
//
// A missing code is a valid business outcome, not a failure; there are no
// retries here.
func ResolveCurrency(currencies []source.RawCurrency, rates source.RateTable) Resolution {
	if len(currencies) == 0 || currencies[0].Code == "" {
		return Resolution{ZeroGDP: true}
	}

	code := currencies[0].Code
	rate, ok := rates[code]
	if !ok || rate <= 0 {
		return Resolution{Code: &code}
	}

	return Resolution{Code: &code, Rate: &rate}
}

// Enrich turns a raw country entry into a full record: currency resolution,
// GDP estimate with a freshly drawn multiplier, refresh timestamp. Identity
// is left for the reconcile engine to settle.
func Enrich(raw source.RawCountry, rates source.RateTable, mult MultiplierSource, refreshedAt time.Time) models.Country {
	res := ResolveCurrency(raw.Currencies, rates)

	var gdp *float64
	if res.ZeroGDP {
		zero := 0.0
		gdp = &zero
	} else {
		gdp = EstimateGDP(raw.Population, mult.Multiplier(), res.Rate)
	}

	return models.Country{
		Name:            strings.TrimSpace(raw.Name),
		Capital:         raw.Capital,
		Region:          raw.Region,
		Population:      raw.Population,
		CurrencyCode:    res.Code,
		ExchangeRate:    res.Rate,
		EstimatedGdp:    gdp,
		FlagUrl:         raw.FlagUrl,
		LastRefreshedAt: refreshedAt,
	}
}

// NormalizeName produces the case-insensitive match key used during
// reconciliation: trimmed, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
