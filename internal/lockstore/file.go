package lockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	recordKeyFirstSeenAt = "firstSeenAt"
	recordKeyExpiresAt   = "expiresAt"
)

// FileStore keeps one small JSON file per (kind, subjectKey) pair. Records
// use plain read-then-write semantics; concurrent writers on the same key
// can race, which the lock contract accepts because the chain enforces real
// exclusivity.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(identifier, network string, kind Kind) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", kind, SubjectKey(identifier, network)))
}

func (s *FileStore) GetRemaining(ctx context.Context, identifier, network string, kind Kind) (time.Duration, error) {
	path := s.path(identifier, network, kind)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read lock record: %w", err)
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		// A corrupt record cannot hold a lock; drop it so it stops
		// shadowing future writes.
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("removing corrupt lock record")
		s.remove(ctx, path)
		return 0, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, fields[recordKeyExpiresAt])
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("removing lock record with unparsable expiry")
		s.remove(ctx, path)
		return 0, nil
	}

	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		// Lazy expiry: treat as absent and self-heal the backing entry.
		s.remove(ctx, path)
		return 0, nil
	}

	return remaining, nil
}

func (s *FileStore) Set(ctx context.Context, identifier, network string, kind Kind, ttl time.Duration, meta Metadata) error {
	now := time.Now().UTC()

	fields := make(map[string]string, len(meta)+2)
	for k, v := range meta {
		if k == recordKeyFirstSeenAt || k == recordKeyExpiresAt {
			continue
		}
		fields[k] = v
	}
	fields[recordKeyFirstSeenAt] = now.Format(time.RFC3339)
	fields[recordKeyExpiresAt] = now.Add(ttl).Format(time.RFC3339)

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal lock record: %w", err)
	}

	path := s.path(identifier, network, kind)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write lock record: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context, identifier, network string, kind Kind) error {
	err := os.Remove(s.path(identifier, network, kind))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear lock record: %w", err)
	}
	return nil
}

func (s *FileStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("lock store path %s is not a directory", s.dir)
	}
	return nil
}

func (s *FileStore) remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("failed to remove expired lock record")
	}
}
