package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	LockStoreBackendFile   = "file"
	LockStoreBackendMemory = "memory"
	LockStoreBackendMongo  = "mongo"
)

// LockStoreConfig selects and parameterizes the lock record store. The store
// is a best-effort rate-limiting aid; the on-chain cooldown is the source of
// truth for claim eligibility.
type LockStoreConfig struct {
	Backend string `mapstructure:"backend"`
	// Dir is the record directory for the file backend.
	Dir string `mapstructure:"dir"`
	// Address and DbName configure the mongo backend.
	Address string `mapstructure:"address"`
	DbName  string `mapstructure:"db-name"`

	PendingTTL  time.Duration `mapstructure:"pending-ttl"`
	CooldownTTL time.Duration `mapstructure:"cooldown-ttl"`
}

func (cfg *LockStoreConfig) Validate() error {
	switch cfg.Backend {
	case LockStoreBackendFile:
		if cfg.Dir == "" {
			return fmt.Errorf("missing lock-store dir for file backend")
		}
	case LockStoreBackendMemory:
	case LockStoreBackendMongo:
		if cfg.Address == "" {
			return fmt.Errorf("missing lock-store address for mongo backend")
		}
		u, err := url.Parse(cfg.Address)
		if err != nil {
			return fmt.Errorf("invalid lock-store address: %w", err)
		}
		if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
			return fmt.Errorf("unsupported lock-store scheme: %s", u.Scheme)
		}
		if cfg.DbName == "" {
			return fmt.Errorf("missing lock-store db-name for mongo backend")
		}
	default:
		return fmt.Errorf("unknown lock-store backend: %s", cfg.Backend)
	}

	if cfg.PendingTTL <= 0 {
		return fmt.Errorf("pending-ttl must be positive")
	}
	if cfg.CooldownTTL <= 0 {
		return fmt.Errorf("cooldown-ttl must be positive")
	}
	if cfg.PendingTTL >= cfg.CooldownTTL {
		return fmt.Errorf("pending-ttl must be shorter than cooldown-ttl")
	}

	return nil
}
