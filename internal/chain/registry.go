package chain

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

// Faucets is the read-only view of all configured network adapters.
type Faucets interface {
	// Get returns the adapter for a network, false when the network is not
	// in the supported set.
	Get(network string) (Faucet, bool)
	Networks() []string
	Ping(ctx context.Context) error
	Close()
}

type registry struct {
	adapters map[string]Faucet
}

// NewFaucets dials every configured network and binds the shared operator
// key to each. Construction fails if any network is unreachable; a faucet
// that silently serves a subset of its configured networks is harder to
// operate than one that refuses to start.
func NewFaucets(ctx context.Context, cfg *config.ChainsConfig) (Faucets, error) {
	key, err := crypto.HexToECDSA(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse faucet private key: %w", err)
	}

	adapters := make(map[string]Faucet, len(cfg.Networks))
	for network, entry := range cfg.Networks {
		adapter, err := NewAdapter(ctx, network, entry, key, cfg)
		if err != nil {
			for _, a := range adapters {
				a.Close()
			}
			return nil, err
		}
		adapters[network] = adapter
	}

	return &registry{adapters: adapters}, nil
}

func (r *registry) Get(network string) (Faucet, bool) {
	adapter, ok := r.adapters[network]
	return adapter, ok
}

func (r *registry) Networks() []string {
	networks := make([]string, 0, len(r.adapters))
	for network := range r.adapters {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	return networks
}

func (r *registry) Ping(ctx context.Context) error {
	for network, adapter := range r.adapters {
		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("network %s is unhealthy: %w", network, err)
		}
	}
	return nil
}

func (r *registry) Close() {
	for _, adapter := range r.adapters {
		adapter.Close()
	}
}
