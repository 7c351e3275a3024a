package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/types"
)

// GetFaucetInfo returns what a frontend needs to render one network's
// faucet: payout, cooldown and remaining balance.
func (s *Services) GetFaucetInfo(ctx context.Context, network string) (*types.FaucetInfo, *types.Error) {
	faucet, ok := s.Faucets.Get(network)
	if !ok {
		return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "Invalid network")
	}

	amount, err := faucet.ClaimAmount(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("network", network).Msg("failed to read claim amount")
		return nil, types.NewInternalServiceError(err)
	}
	cooldown, err := faucet.CooldownSeconds(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("network", network).Msg("failed to read cooldown")
		return nil, types.NewInternalServiceError(err)
	}
	balance, err := faucet.Balance(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("network", network).Msg("failed to read faucet balance")
		return nil, types.NewInternalServiceError(err)
	}

	return &types.FaucetInfo{
		Network:         network,
		ContractAddress: faucet.ContractAddress().Hex(),
		ClaimAmountWei:  amount.String(),
		CooldownSeconds: cooldown,
		FaucetBalance:   balance.String(),
	}, nil
}

// ListNetworks returns the supported network identifiers in sorted order.
func (s *Services) ListNetworks() []string {
	return s.Faucets.Networks()
}
