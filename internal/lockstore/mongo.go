package lockstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

const lockCollection = "faucet_locks"

// MongoStore keeps lock records in a single collection, one document per
// (kind, subjectKey). A TTL index on expiresAt garbage-collects stale
// documents in the background; reads still apply lazy expiry themselves
// because the TTL monitor only runs periodically.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

type mongoLockDocument struct {
	Id          string    `bson:"_id"`
	FirstSeenAt time.Time `bson:"first_seen_at"`
	ExpiresAt   time.Time `bson:"expires_at"`
	Metadata    Metadata  `bson:"metadata,omitempty"`
}

func NewMongoStore(ctx context.Context, cfg config.LockStoreConfig) (*MongoStore, error) {
	clientOps := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	store := &MongoStore{client: client, dbName: cfg.DbName}

	index := mongo.IndexModel{
		Keys:    bson.M{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := store.collection().Indexes().CreateOne(ctx, index); err != nil {
		return nil, fmt.Errorf("failed to create lock ttl index: %w", err)
	}

	return store, nil
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(lockCollection)
}

func mongoKey(identifier, network string, kind Kind) string {
	return string(kind) + "-" + SubjectKey(identifier, network)
}

func (s *MongoStore) GetRemaining(ctx context.Context, identifier, network string, kind Kind) (time.Duration, error) {
	key := mongoKey(identifier, network, kind)

	var doc mongoLockDocument
	err := s.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read lock record: %w", err)
	}

	remaining := time.Until(doc.ExpiresAt)
	if remaining <= 0 {
		// The TTL monitor will get to it eventually; delete now so the
		// record does not linger past its expiry.
		if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
			return 0, fmt.Errorf("failed to remove expired lock record: %w", err)
		}
		return 0, nil
	}

	return remaining, nil
}

func (s *MongoStore) Set(ctx context.Context, identifier, network string, kind Kind, ttl time.Duration, meta Metadata) error {
	now := time.Now().UTC()
	doc := mongoLockDocument{
		Id:          mongoKey(identifier, network, kind),
		FirstSeenAt: now,
		ExpiresAt:   now.Add(ttl),
		Metadata:    meta,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": doc.Id}, doc, opts); err != nil {
		return fmt.Errorf("failed to write lock record: %w", err)
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, identifier, network string, kind Kind) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": mongoKey(identifier, network, kind)}); err != nil {
		return fmt.Errorf("failed to clear lock record: %w", err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
