package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/cmd/faucet-api-service/cli"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/api"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/clients/captcha"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/events"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/lockstore"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/observability/healthcheck"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/observability/metrics"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	store, err := lockstore.New(ctx, cfg.LockStore)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up the lock store")
	}

	faucets, err := chain.NewFaucets(ctx, &cfg.Chains)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up chain adapters")
	}
	defer faucets.Close()

	publisher, err := events.New(cfg.Events)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up the claim event publisher")
	}
	defer publisher.Close() // nolint:errcheck

	verifier := captcha.NewClient(&cfg.Captcha)

	services := services.New(cfg, store, verifier, faucets, publisher)

	if err := healthcheck.StartHealthCheckCron(ctx, store, faucets, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up faucet api service")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- apiServer.Start()
	}()

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("error while starting faucet api service")
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received, draining in-flight requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error while shutting down faucet api service")
		}
	}
}
