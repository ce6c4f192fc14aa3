// Package memory is an in-process storage.DocumentStore for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// Store keeps documents in memory. Documents are deep-copied on the way in
// and out, so callers never share state with the store.
type Store struct {
	mu   sync.RWMutex
	docs map[string]map[string]map[string]interface{}
}

func New() *Store {
	return &Store{docs: make(map[string]map[string]map[string]interface{})}
}

func (s *Store) Get(_ context.Context, collection, id string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyMap(doc), nil
}

func (s *Store) Create(_ context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collection(collection)
	id := uuid.New().String()
	for coll[id] != nil {
		id = uuid.New().String()
	}
	coll[id] = copyMap(data)
	return id, nil
}

// Put writes a document under a caller-chosen id.
func (s *Store) Put(_ context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection(collection)[id] = copyMap(data)
	return nil
}

// List returns the sorted ids in collection.
func (s *Store) List(_ context.Context, collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs[collection]))
	for id := range s.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) Ping(context.Context) error { return nil }

// caller holds s.mu
func (s *Store) collection(name string) map[string]map[string]interface{} {
	coll, ok := s.docs[name]
	if !ok {
		coll = make(map[string]map[string]interface{})
		s.docs[name] = coll
	}
	return coll
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return copyMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = copyValue(t[i])
		}
		return out
	default:
		return v
	}
}
