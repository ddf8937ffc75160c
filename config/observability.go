package config

import "time"

// StatsdConfig contains StatsD metric emission configuration. Metrics are
// disabled unless an address is configured.
type StatsdConfig struct {
	// Enabled toggles metric emission.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// Address is the host:port of the StatsD UDP endpoint.
	Address string `env:"ADDRESS"`

	// Prefix is prepended to every metric name.
	Prefix string `env:"PREFIX" envDefault:"resumelab"`
}

// NotifyConfig contains failure notification sink configuration. A sink is
// active only when its credential (webhook URL or routing key) is set.
type NotifyConfig struct {
	// SlackWebhookURL is the Slack incoming webhook to post failures to.
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`

	// SlackChannel optionally overrides the webhook's default channel.
	SlackChannel string `env:"SLACK_CHANNEL"`

	// SlackUsername is the bot display name.
	SlackUsername string `env:"SLACK_USERNAME" envDefault:"resumelab"`

	// ResumeURLPrefix makes resume IDs in Slack messages clickable.
	ResumeURLPrefix string `env:"RESUME_URL_PREFIX"`

	// PagerDutyRoutingKey is the Events API v2 integration key.
	PagerDutyRoutingKey string `env:"PAGERDUTY_ROUTING_KEY"`

	// PagerDutySource identifies the reporting host or service.
	PagerDutySource string `env:"PAGERDUTY_SOURCE" envDefault:"resumelab"`

	// Timeout bounds a single delivery attempt to a sink.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`

	// RetryLimit is the number of redelivery attempts per sink.
	RetryLimit int `env:"RETRY_LIMIT" envDefault:"2"`
}

// Sanitize applies guardrails to notification configuration values.
func (n *NotifyConfig) Sanitize() {
	if n.Timeout <= 0 {
		n.Timeout = 5 * time.Second
	}
	if n.RetryLimit < 0 {
		n.RetryLimit = 0
	}
}
