// Package config defines environment-driven configuration for resumelab,
// loaded with github.com/caarlos0/env.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files:
//   - auth.go: token and session configuration
//   - database.go: Postgres and Redis configuration
//   - http.go: HTTP server configuration
//   - broker.go: message broker and improvement worker configuration
//   - observability.go: metrics and failure notification configuration
//   - services.go: service mode selection
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.).
	IsDev bool `env:"DEV" envDefault:"false"`

	Auth     AuthConfig  `envPrefix:"AUTH_"`
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	HTTP     HTTPConfig
	Broker   BrokerConfig   `envPrefix:"BROKER_"`
	Improver ImproverConfig `envPrefix:"IMPROVER_"`
	Statsd   StatsdConfig   `envPrefix:"STATSD_"`
	Notify   NotifyConfig   `envPrefix:"NOTIFY_"`

	// Services is a comma-delimited list of service modes to run in this
	// process (http, improver).
	Services string `env:"SERVICES" envDefault:"http"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Auth.Sanitize()
	c.Improver.Sanitize()
	c.Notify.Sanitize()
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsImproverEnabled returns true if the improvement worker service is enabled.
func (c *AppConfig) IsImproverEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeImprover]
}
