package config

import (
	"fmt"
	"net/url"
	"time"
)

// CaptchaConfig points at the upstream human-verification service. When the
// secret is empty every captcha check fails closed, which effectively
// disables the faucet; deployments that genuinely want captcha off should
// set skip-verification instead.
type CaptchaConfig struct {
	VerifyURL        string        `mapstructure:"verify-url"`
	Secret           string        `mapstructure:"secret"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SkipVerification bool          `mapstructure:"skip-verification"`
}

func (cfg *CaptchaConfig) Validate() error {
	if cfg.SkipVerification {
		return nil
	}

	if cfg.VerifyURL == "" {
		return fmt.Errorf("missing captcha verify-url")
	}

	parsedURL, err := url.ParseRequestURI(cfg.VerifyURL)
	if err != nil {
		return fmt.Errorf("invalid captcha verify-url: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("captcha verify-url must start with http or https")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("captcha timeout must be positive")
	}

	return nil
}
