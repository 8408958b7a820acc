package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects mutating endpoints (refresh, delete) when set.
	// Read-only endpoints stay public.
	ApiKey string `mapstructure:"api_key" default:""`
	// TopGDPCount is the number of top-GDP countries rendered into the
	// summary image after each refresh.
	TopGDPCount int `mapstructure:"top_gdp_count" default:"5"`
}

// TopN returns the configured summary view size, falling back to 5 when the
// configured value is not positive.
func (c Config) TopN() int {
	if c.TopGDPCount <= 0 {
		return 5
	}
	return c.TopGDPCount
}
