package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/resumelab/resumelab/config"
	"github.com/resumelab/resumelab/internal/observability/notify"
	"github.com/resumelab/resumelab/internal/observability/notify/pagerduty"
	"github.com/resumelab/resumelab/internal/observability/notify/slack"
	"github.com/resumelab/resumelab/internal/observability/statsd"
)

// BuildMetricsSink constructs the StatsD client. When metrics are disabled
// the returned client is inert but still safe to use and close.
func BuildMetricsSink(cfg config.StatsdConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Enabled,
		Address: cfg.Address,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create statsd client: %w", err)
	}

	if client.Enabled() && logger != nil {
		logger.Info("statsd metrics enabled", "address", cfg.Address, "prefix", cfg.Prefix)
	}
	return client, nil
}

// BuildFailureSink assembles the failure notification fanout from every
// configured channel. It returns nil when no channel is configured.
func BuildFailureSink(cfg config.NotifyConfig, logger *slog.Logger) (notify.Sink, error) {
	var sinks notify.Fanout

	if cfg.SlackWebhookURL != "" {
		client, err := slack.NewClient(slack.Config{
			WebhookURL:      cfg.SlackWebhookURL,
			Channel:         cfg.SlackChannel,
			Username:        cfg.SlackUsername,
			Timeout:         cfg.Timeout,
			RetryLimit:      cfg.RetryLimit,
			ResumeURLPrefix: cfg.ResumeURLPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("create slack sink: %w", err)
		}
		sinks = append(sinks, client)
	}

	if cfg.PagerDutyRoutingKey != "" {
		client, err := pagerduty.NewClient(pagerduty.Config{
			RoutingKey: cfg.PagerDutyRoutingKey,
			Source:     cfg.PagerDutySource,
			Timeout:    cfg.Timeout,
			RetryLimit: cfg.RetryLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("create pagerduty sink: %w", err)
		}
		sinks = append(sinks, client)
	}

	if len(sinks) == 0 {
		return nil, nil
	}

	if logger != nil {
		logger.Info("failure notifications enabled", "sinks", len(sinks))
	}
	return sinks, nil
}
