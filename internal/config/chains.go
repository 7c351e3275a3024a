package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChainEntry is the static binding of one supported network: where to reach
// it and which deployed faucet contract to drive. Entries are resolved once
// at startup and never mutated afterwards.
type ChainEntry struct {
	RPCEndpoint     string `mapstructure:"rpc-endpoint"`
	ContractAddress string `mapstructure:"contract-address"`
}

type ChainsConfig struct {
	// Networks maps a network identifier (e.g. "sepolia") to its binding.
	Networks map[string]ChainEntry `mapstructure:"networks"`
	// PrivateKey is the hex-encoded key of the faucet operator account. The
	// same credential signs claim transactions on every configured network.
	PrivateKey string `mapstructure:"private-key"`
	// RequestTimeout bounds every outbound RPC call, reads and dispatch alike.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	// ConfirmTimeout bounds the wait for a dispatched claim to be mined.
	ConfirmTimeout time.Duration `mapstructure:"confirm-timeout"`
}

func (cfg *ChainsConfig) Validate() error {
	if len(cfg.Networks) == 0 {
		return fmt.Errorf("at least one network must be configured")
	}

	for network, entry := range cfg.Networks {
		if network == "" {
			return fmt.Errorf("network identifier cannot be empty")
		}

		u, err := url.Parse(entry.RPCEndpoint)
		if err != nil {
			return fmt.Errorf("invalid rpc endpoint for network %s: %w", network, err)
		}
		switch u.Scheme {
		case "http", "https", "ws", "wss":
		default:
			return fmt.Errorf("unsupported rpc endpoint scheme %q for network %s", u.Scheme, network)
		}

		if !common.IsHexAddress(entry.ContractAddress) {
			return fmt.Errorf("invalid contract address for network %s: %s", network, entry.ContractAddress)
		}
	}

	if cfg.PrivateKey == "" {
		return fmt.Errorf("missing faucet private key")
	}
	if _, err := crypto.HexToECDSA(cfg.PrivateKey); err != nil {
		return fmt.Errorf("invalid faucet private key: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("chains request timeout must be positive")
	}
	if cfg.ConfirmTimeout <= 0 {
		return fmt.Errorf("chains confirm timeout must be positive")
	}

	return nil
}
