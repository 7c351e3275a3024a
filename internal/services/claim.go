package services

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/events"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/lockstore"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/observability/metrics"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/types"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/utils"
)

const msgWaitBeforeNextClaim = "Wait before next claim"

// Claim runs the whole claim sequence for one request: captcha gate, local
// cooldown and pending lock checks, pending-lock acquisition, on-chain
// dispatch, then lock promotion or release.
//
// The pending lock is written before the chain is touched and is released on
// every exit path except success, where it is superseded by the cooldown
// lock. If the process dies mid-flight the pending record self-expires after
// its short TTL instead of wedging the client permanently.
//
// Lock store failures are logged and swallowed throughout: the store is a
// best-effort deterrent, the contract's per-recipient cooldown is the real
// backstop.
func (s *Services) Claim(
	ctx context.Context, clientID, network, recipient, captchaToken string,
) (*types.ClaimResult, *types.Error) {
	logger := log.Ctx(ctx).With().
		Str("network", network).
		Str("recipient", recipient).
		Logger()

	if !s.Captcha.Verify(ctx, captchaToken, clientID) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidCaptcha, "Invalid captcha")
	}

	if remaining := s.lockRemaining(ctx, clientID, network, lockstore.KindCooldown); remaining > 0 {
		return nil, types.NewErrorWithWait(
			http.StatusTooManyRequests, types.RateLimited, msgWaitBeforeNextClaim, ceilSeconds(remaining),
		)
	}
	if remaining := s.lockRemaining(ctx, clientID, network, lockstore.KindPending); remaining > 0 {
		return nil, types.NewErrorWithWait(
			http.StatusTooManyRequests, types.RateLimited, msgWaitBeforeNextClaim, ceilSeconds(remaining),
		)
	}

	// Acquire the pending lock before anything touches the chain. This
	// closes the duplicate-submission window for the multi-second
	// confirmation wait below.
	meta := lockstore.Metadata{"recipient": recipient, "network": network}
	if err := s.LockStore.Set(ctx, clientID, network, lockstore.KindPending, s.cfg.LockStore.PendingTTL, meta); err != nil {
		logger.Warn().Err(err).Msg("failed to write pending lock, continuing anyway")
		metrics.RecordLockStoreFailure("set")
	}

	pendingHeld := true
	defer func() {
		if pendingHeld {
			s.clearLock(ctx, clientID, network, lockstore.KindPending)
		}
	}()

	faucet, ok := s.Faucets.Get(network)
	if !ok {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidNetwork, "Invalid network")
	}
	if !utils.IsValidEthAddress(recipient) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAddress, "Invalid recipient address")
	}
	recipientAddr := common.HexToAddress(recipient)

	// Informational read only, a failure here never blocks the claim.
	var amountWei string
	if amount, err := faucet.ClaimAmount(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to read claim amount before dispatch")
	} else {
		amountWei = amount.String()
		logger.Info().Str("amountWei", amountWei).Msg("dispatching claim")
	}

	txHash, err := faucet.DispatchClaim(ctx, recipientAddr)
	if err != nil {
		if rejected, ok := chain.AsRejected(err); ok {
			if rejected.Reason == chain.ReasonCooldownActive {
				wait := s.chainCooldownWait(ctx, faucet, recipientAddr)
				return nil, types.NewErrorWithWait(
					http.StatusBadRequest, types.ChainCooldownActive, msgWaitBeforeNextClaim, wait,
				)
			}
			logger.Warn().Str("reason", string(rejected.Reason)).Str("revert", rejected.Raw).Msg("claim rejected by contract")
			return nil, types.NewError(http.StatusBadRequest, types.FaucetRejected, rejected)
		}
		logger.Error().Err(err).Msg("claim dispatch failed")
		return nil, types.NewInternalServiceError(err)
	}

	// Promote: the cooldown lock takes over from the pending lock. Written
	// before the pending release so the subject is never momentarily
	// unlocked.
	meta["txHash"] = txHash.Hex()
	if err := s.LockStore.Set(ctx, clientID, network, lockstore.KindCooldown, s.cfg.LockStore.CooldownTTL, meta); err != nil {
		logger.Warn().Err(err).Msg("failed to write cooldown lock after successful claim")
		metrics.RecordLockStoreFailure("set")
	}
	pendingHeld = false
	s.clearLock(ctx, clientID, network, lockstore.KindPending)

	s.publishClaim(ctx, events.ClaimEvent{
		Network:   network,
		Recipient: recipientAddr.Hex(),
		TxHash:    txHash.Hex(),
		AmountWei: amountWei,
		ClaimedAt: time.Now().UTC(),
	})

	logger.Info().Str("txHash", txHash.Hex()).Msg("claim succeeded")

	return &types.ClaimResult{
		Network:   network,
		Recipient: recipientAddr.Hex(),
		TxHash:    txHash.Hex(),
		AmountWei: amountWei,
	}, nil
}

// lockRemaining reads one lock, treating store failures as "no lock" so a
// broken store degrades to chain-only enforcement instead of a dead faucet.
func (s *Services) lockRemaining(ctx context.Context, clientID, network string, kind lockstore.Kind) time.Duration {
	remaining, err := s.LockStore.GetRemaining(ctx, clientID, network, kind)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", kind.String()).Msg("failed to read lock record, treating as absent")
		metrics.RecordLockStoreFailure("get")
		return 0
	}
	return remaining
}

func (s *Services) clearLock(ctx context.Context, clientID, network string, kind lockstore.Kind) {
	if err := s.LockStore.Clear(ctx, clientID, network, kind); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", kind.String()).Msg("failed to clear lock record")
		metrics.RecordLockStoreFailure("clear")
	}
}

// chainCooldownWait computes how long the recipient has to wait according to
// the contract: lastClaim + cooldown - now, clamped to zero. Read failures
// degrade to a zero hint rather than failing the response; the caller is
// being told "try later" either way.
func (s *Services) chainCooldownWait(ctx context.Context, faucet chain.Faucet, recipient common.Address) int64 {
	lastClaim, err := faucet.LastClaimTimestamp(ctx, recipient)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to read last claim timestamp for wait hint")
		return 0
	}
	cooldown, err := faucet.CooldownSeconds(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to read cooldown for wait hint")
		return 0
	}

	wait := int64(lastClaim) + int64(cooldown) - time.Now().Unix()
	if wait < 0 {
		wait = 0
	}
	return wait
}

func (s *Services) publishClaim(ctx context.Context, event events.ClaimEvent) {
	if err := s.Events.PublishClaim(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to publish claim event")
	}
}

// ceilSeconds converts a remaining lock duration to whole seconds, rounding
// up so the client never retries a moment too early.
func ceilSeconds(d time.Duration) int64 {
	return int64((d + time.Second - 1) / time.Second)
}
