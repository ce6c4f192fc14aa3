// Package redis implements storage.DocumentStore on Redis. Documents are
// stored as JSON strings under doc:{collection}/{id}, and every collection
// keeps a set of its document ids.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

const (
	docKeyPrefix   = "doc:"  // doc:{collection}/{id} -> JSON document
	indexKeyPrefix = "coll:" // coll:{collection} -> set of ids
)

var errIDTaken = errors.New("document id already taken")

// createScript indexes the id before writing the document, so a failed
// SADD leaves nothing behind. Returns 0 when the document already exists.
var createScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("SADD", KEYS[2], ARGV[2])
redis.call("SET", KEYS[1], ARGV[1])
return 1
`)

// Store is a Redis-backed document store.
type Store struct {
	client *redis.Client
	newID  func() string
}

// New creates a new Store
func New(client *redis.Client) *Store {
	return &Store{
		client: client,
		newID:  func() string { return uuid.New().String() },
	}
}

// Get reads a document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	data, err := s.client.Get(ctx, s.docKey(collection, id)).Result()
	if err == redis.Nil {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return doc, nil
}

// Create writes a new document under a fresh uuid.
func (s *Store) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	id := s.newID()
	created, err := createScript.Run(ctx, s.client,
		[]string{s.docKey(collection, id), s.indexKey(collection)},
		payload, id,
	).Int()
	if err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}
	if created == 0 {
		return "", fmt.Errorf("%w: %s", errIDTaken, id)
	}

	return id, nil
}

// Put writes a document under a caller-chosen id, replacing any existing one.
func (s *Store) Put(ctx context.Context, collection, id string, data map[string]interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.docKey(collection, id), payload, 0)
	pipe.SAdd(ctx, s.indexKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

// List returns the ids of every document in collection.
func (s *Store) List(ctx context.Context, collection string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return ids, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) docKey(collection, id string) string {
	return fmt.Sprintf("%s%s/%s", docKeyPrefix, collection, id)
}

func (s *Store) indexKey(collection string) string {
	return fmt.Sprintf("%s%s", indexKeyPrefix, collection)
}
