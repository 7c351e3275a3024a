package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain/bindings"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/observability/metrics"
)

// Faucet is the per-network chain adapter consumed by the claim service.
type Faucet interface {
	Network() string
	ContractAddress() common.Address
	// ClaimAmount is the per-claim payout in wei the contract currently pays.
	ClaimAmount(ctx context.Context) (*big.Int, error)
	// CooldownSeconds is the contract's per-recipient minimum claim interval.
	CooldownSeconds(ctx context.Context) (uint64, error)
	// LastClaimTimestamp is the unix time of the recipient's last successful
	// claim, 0 if it never claimed.
	LastClaimTimestamp(ctx context.Context, recipient common.Address) (uint64, error)
	// Balance is the faucet contract's current balance in wei.
	Balance(ctx context.Context) (*big.Int, error)
	// DispatchClaim submits adminClaimFor(recipient) signed by the operator
	// key and waits for on-chain confirmation. Failures are either
	// *RejectedError (the contract refused) or *TransportError.
	DispatchClaim(ctx context.Context, recipient common.Address) (common.Hash, error)
	Ping(ctx context.Context) error
	Close()
}

// Adapter drives one deployed faucet contract over one RPC connection. It is
// immutable after construction and safe for concurrent use: reads go
// straight to the node, writes serialize on dispatchMu so the operator
// account's nonce allocation stays ordered per network.
type Adapter struct {
	network      string
	contractAddr common.Address
	client       *ethclient.Client
	caller       *bindings.FaucetCaller
	transactor   *bindings.FaucetTransactor

	signer         *bind.TransactOpts
	requestTimeout time.Duration
	confirmTimeout time.Duration

	dispatchMu sync.Mutex
	logger     zerolog.Logger
}

func NewAdapter(
	ctx context.Context, network string, entry config.ChainEntry, key *ecdsa.PrivateKey, cfg *config.ChainsConfig,
) (*Adapter, error) {
	client, err := ethclient.DialContext(ctx, entry.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc for network %s: %w", network, err)
	}

	chainIDCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	chainID, err := client.ChainID(chainIDCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to fetch chain id for network %s: %w", network, err)
	}

	signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to build transactor for network %s: %w", network, err)
	}

	contractAddr := common.HexToAddress(entry.ContractAddress)
	caller, err := bindings.NewFaucetCaller(contractAddr, client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to bind faucet contract on network %s: %w", network, err)
	}
	transactor, err := bindings.NewFaucetTransactor(contractAddr, client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to bind faucet transactor on network %s: %w", network, err)
	}

	logger := log.With().Str("network", network).Str("contract", contractAddr.Hex()).Logger()
	logger.Info().Str("chainId", chainID.String()).Msg("connected to faucet contract")

	return &Adapter{
		network:        network,
		contractAddr:   contractAddr,
		client:         client,
		caller:         caller,
		transactor:     transactor,
		signer:         signer,
		requestTimeout: cfg.RequestTimeout,
		confirmTimeout: cfg.ConfirmTimeout,
		logger:         logger,
	}, nil
}

func (a *Adapter) Network() string {
	return a.network
}

func (a *Adapter) ContractAddress() common.Address {
	return a.contractAddr
}

func (a *Adapter) callOpts(ctx context.Context) (*bind.CallOpts, context.CancelFunc) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.requestTimeout)
	return &bind.CallOpts{Context: ctxWithTimeout}, cancel
}

func (a *Adapter) ClaimAmount(ctx context.Context) (*big.Int, error) {
	opts, cancel := a.callOpts(ctx)
	defer cancel()

	amount, err := a.caller.ClaimAmount(opts)
	if err != nil {
		return nil, &TransportError{Op: "claimAmount", Err: err}
	}
	return amount, nil
}

func (a *Adapter) CooldownSeconds(ctx context.Context) (uint64, error) {
	opts, cancel := a.callOpts(ctx)
	defer cancel()

	cooldown, err := a.caller.Cooldown(opts)
	if err != nil {
		return 0, &TransportError{Op: "cooldown", Err: err}
	}
	return cooldown.Uint64(), nil
}

func (a *Adapter) LastClaimTimestamp(ctx context.Context, recipient common.Address) (uint64, error) {
	opts, cancel := a.callOpts(ctx)
	defer cancel()

	last, err := a.caller.LastClaim(opts, recipient)
	if err != nil {
		return 0, &TransportError{Op: "lastClaim", Err: err}
	}
	return last.Uint64(), nil
}

func (a *Adapter) Balance(ctx context.Context) (*big.Int, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	balance, err := a.client.BalanceAt(ctxWithTimeout, a.contractAddr, nil)
	if err != nil {
		return nil, &TransportError{Op: "balanceAt", Err: err}
	}
	return balance, nil
}

func (a *Adapter) DispatchClaim(ctx context.Context, recipient common.Address) (common.Hash, error) {
	// One in-flight transaction per network: gas estimation, nonce
	// allocation and submission must not interleave across requests or the
	// operator account produces nonce gaps.
	a.dispatchMu.Lock()
	defer a.dispatchMu.Unlock()

	logger := a.logger.With().Str("recipient", recipient.Hex()).Logger()

	timer := metrics.StartChainCallDurationTimer(a.network, "dispatchClaim")

	sendCtx, cancelSend := context.WithTimeout(ctx, a.requestTimeout)
	defer cancelSend()

	opts := *a.signer
	opts.Context = sendCtx

	tx, err := a.transactor.AdminClaimFor(&opts, recipient)
	if err != nil {
		timer(metrics.Error)
		return common.Hash{}, classifyDispatchError("adminClaimFor", err)
	}

	logger.Info().Str("txHash", tx.Hash().Hex()).Msg("claim transaction submitted, waiting for confirmation")

	confirmCtx, cancelConfirm := context.WithTimeout(ctx, a.confirmTimeout)
	defer cancelConfirm()

	receipt, err := bind.WaitMined(confirmCtx, a.client, tx)
	if err != nil {
		timer(metrics.Error)
		return common.Hash{}, &TransportError{Op: "waitMined", Err: err}
	}
	if receipt.Status == types.ReceiptStatusFailed {
		timer(metrics.Error)
		logger.Error().Str("txHash", tx.Hash().Hex()).Msg("claim transaction reverted on-chain")
		return common.Hash{}, &RejectedError{Reason: ReasonUnknown, Raw: "claim transaction reverted on-chain"}
	}

	timer(metrics.Success)
	logger.Info().
		Str("txHash", tx.Hash().Hex()).
		Uint64("block", receipt.BlockNumber.Uint64()).
		Msg("claim transaction confirmed")

	return tx.Hash(), nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	if _, err := a.client.BlockNumber(ctxWithTimeout); err != nil {
		return &TransportError{Op: "blockNumber", Err: err}
	}
	return nil
}

func (a *Adapter) Close() {
	a.client.Close()
}
