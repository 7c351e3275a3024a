package healthcheck

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/lockstore"
)

var logger zerolog.Logger = log.Logger

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// StartHealthCheckCron periodically probes the lock store and every chain
// RPC. Failures are logged, never fatal: the lock store is best-effort by
// contract, and a flapping RPC should show up in logs and metrics, not take
// the whole faucet down.
func StartHealthCheckCron(ctx context.Context, store lockstore.Store, faucets chain.Faucets, cronTimeSeconds int) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTimeSeconds == 0 {
		cronTimeSeconds = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTimeSeconds)

	_, err := c.AddFunc(cronSpec, func() {
		runHealthCheck(ctx, store, faucets)
	})
	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Stopping Health Check Cron")
		c.Stop()
	}()

	return nil
}

func runHealthCheck(ctx context.Context, store lockstore.Store, faucets chain.Faucets) {
	if err := store.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("lock store is not healthy")
	}
	if err := faucets.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("one or more chain RPC endpoints are not healthy")
	}
}
