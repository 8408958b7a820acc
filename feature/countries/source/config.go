package source

// Config holds configuration for the external data sources.
type Config struct {
	// CountriesURL is the REST Countries endpoint returning all countries.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// RatesURL is the exchange-rate endpoint returning USD-based rates.
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	// TimeoutSeconds bounds each fetch; past it the fetch counts as failed.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
