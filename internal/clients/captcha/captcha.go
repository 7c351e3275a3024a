package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

// Verifier is the human-verification gate in front of claims.
type Verifier interface {
	// Verify reports whether the captcha token is valid for the given remote
	// IP. It is fail-closed: any uncertainty (missing token, missing secret,
	// upstream failure) yields false, never an error.
	Verify(ctx context.Context, token, remoteIP string) bool
}

// Client verifies tokens against a reCAPTCHA/Turnstile style endpoint: a
// form POST of secret/response/remoteip answered with a JSON body carrying a
// success flag.
type Client struct {
	cfg        *config.CaptchaConfig
	httpClient *http.Client
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewClient(cfg *config.CaptchaConfig) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) bool {
	if c.cfg.SkipVerification {
		return true
	}

	if token == "" {
		return false
	}
	if c.cfg.Secret == "" {
		log.Ctx(ctx).Error().Msg("captcha secret is not configured, rejecting request")
		return false
	}

	form := url.Values{}
	form.Set("secret", c.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctxWithTimeout, http.MethodPost, c.cfg.VerifyURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to build captcha verification request")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("captcha verification request failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Msg("captcha verification returned non-success status")
		return false
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to decode captcha verification response")
		return false
	}

	if !out.Success {
		log.Ctx(ctx).Debug().Strs("errorCodes", out.ErrorCodes).Msg("captcha token rejected")
	}
	return out.Success
}
