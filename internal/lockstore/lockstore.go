package lockstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

// Kind distinguishes the two lock record flavours: a short-lived pending
// marker covering an in-flight claim, and a long-lived cooldown marker set
// after a successful one.
type Kind string

const (
	KindPending  Kind = "pending"
	KindCooldown Kind = "cooldown"
)

func (k Kind) String() string {
	return string(k)
}

// Metadata is free-form context attached to a lock record (recipient,
// network, tx hash). It is informational only and never interpreted.
type Metadata map[string]string

// Store is the lock record store. Records expire lazily: a read that finds
// an expired record reports it absent and opportunistically deletes it, so
// no background sweeper is required.
//
// The store is best-effort by contract. Callers must tolerate errors from
// Set and Clear (log and continue); the on-chain cooldown is the hard
// backstop for claim eligibility, the local store only cheapens the common
// case and keeps response times honest.
type Store interface {
	// GetRemaining returns how long the lock of the given kind still holds
	// for (identifier, network), or 0 when there is no live record.
	GetRemaining(ctx context.Context, identifier, network string, kind Kind) (time.Duration, error)
	// Set writes a lock record expiring after ttl, replacing any previous
	// record of the same kind.
	Set(ctx context.Context, identifier, network string, kind Kind, ttl time.Duration, meta Metadata) error
	// Clear removes the record of the given kind. Clearing an absent record
	// is a no-op, never an error.
	Clear(ctx context.Context, identifier, network string, kind Kind) error
	Ping(ctx context.Context) error
}

// SubjectKey derives the fixed-length record key for a rate-limiting subject.
// Hashing keeps client-controlled input (the identifier is typically an IP,
// possibly taken from a proxy header) out of filesystem paths and database
// ids.
func SubjectKey(identifier, network string) string {
	sum := sha256.Sum256([]byte(identifier + "|" + network))
	return hex.EncodeToString(sum[:])
}

// New builds the store selected by the configuration.
func New(ctx context.Context, cfg config.LockStoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.LockStoreBackendFile:
		return NewFileStore(cfg.Dir)
	case config.LockStoreBackendMemory:
		return NewMemoryStore(), nil
	case config.LockStoreBackendMongo:
		return NewMongoStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown lock-store backend: %s", cfg.Backend)
	}
}
