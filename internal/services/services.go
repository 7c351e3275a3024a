package services

import (
	"context"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/clients/captcha"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/events"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/lockstore"
)

// Service layer contains the business logic and is used to interact with
// the lock store and the external collaborators (captcha, chains, broker).
type Services struct {
	LockStore lockstore.Store
	Captcha   captcha.Verifier
	Faucets   chain.Faucets
	Events    events.Publisher
	cfg       *config.Config
}

func New(
	cfg *config.Config,
	store lockstore.Store,
	verifier captcha.Verifier,
	faucets chain.Faucets,
	publisher events.Publisher,
) *Services {
	return &Services{
		LockStore: store,
		Captcha:   verifier,
		Faucets:   faucets,
		Events:    publisher,
		cfg:       cfg,
	}
}

// DoHealthCheck checks the health of the service by pinging the lock store
// and every configured chain RPC.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	if err := s.LockStore.Ping(ctx); err != nil {
		return err
	}
	return s.Faucets.Ping(ctx)
}
