// Package config defines gateway configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// UpstreamBaseURL points at the sports-data provider's league root,
	// e.g. ".../sports/mma/ufc". The scoreboard path is appended by the
	// client.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeoutMS bounds each provider request.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// PublicBaseURL is the externally visible base URL published in the
	// registration document. Deployment sets it via env; the default is the
	// local development host.
	PublicBaseURL string `koanf:"public_base_url"`

	// CORSOrigins lists origins allowed by the HTTP surface.
	CORSOrigins []string `koanf:"cors_origins"`
}

// Defaults applied by New.
const (
	defaultAddr              = ":8080"
	defaultUpstreamBaseURL   = "https://site.api.espn.com/apis/site/v2/sports/mma/ufc"
	defaultUpstreamTimeoutMS = 15_000
	defaultPublicBaseURL     = "http://localhost:8080"
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              defaultAddr,
		UpstreamBaseURL:   defaultUpstreamBaseURL,
		UpstreamTimeoutMS: defaultUpstreamTimeoutMS,
		PublicBaseURL:     defaultPublicBaseURL,
		CORSOrigins:       []string{"*"},
	}
}
