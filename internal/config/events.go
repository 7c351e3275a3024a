package config

import (
	"fmt"
	"net/url"
)

// EventsConfig configures the optional claim-event publisher. When disabled
// the service uses a noop publisher and never touches the broker.
type EventsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Url      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *EventsConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Url == "" {
		return fmt.Errorf("missing events broker url")
	}

	u, err := url.Parse(cfg.Url)
	if err != nil {
		return fmt.Errorf("invalid events broker url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return fmt.Errorf("unsupported events broker scheme: %s", u.Scheme)
	}

	if cfg.Exchange == "" {
		return fmt.Errorf("missing events exchange name")
	}

	return nil
}
