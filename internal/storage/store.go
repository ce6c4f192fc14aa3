// Package storage defines the document store used by the checklist repositories.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no document exists for the key.
var ErrNotFound = errors.New("document not found")

// DocumentStore reads and creates schemaless documents. A collection is a
// slash separated path with an odd number of segments, such as
// "permit_blueprints" or "projects/p-1/checklists".
type DocumentStore interface {
	// Get returns the document with the given id or ErrNotFound.
	Get(ctx context.Context, collection, id string) (map[string]interface{}, error)
	// Create writes data as a new document and returns its store-assigned id.
	// It never overwrites an existing document.
	Create(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// OpenFunc opens the backing store.
type OpenFunc func(ctx context.Context) (DocumentStore, error)

// Lazy is a DocumentStore that opens its backend on first use and reuses it
// for the rest of the process. A failed open is retried on the next call.
type Lazy struct {
	open OpenFunc

	mu    sync.Mutex
	store DocumentStore
}

// NewLazy creates a Lazy store around open.
func NewLazy(open OpenFunc) *Lazy {
	return &Lazy{open: open}
}

func (l *Lazy) get(ctx context.Context) (DocumentStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		return l.store, nil
	}
	// The store outlives the request that happens to open it.
	s, err := l.open(context.WithoutCancel(ctx))
	if err != nil {
		return nil, err
	}
	l.store = s
	return s, nil
}

// Initialized reports whether the backend has been opened.
func (l *Lazy) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

func (l *Lazy) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	s, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, collection, id)
}

func (l *Lazy) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return s.Create(ctx, collection, data)
}

func (l *Lazy) Ping(ctx context.Context) error {
	s, err := l.get(ctx)
	if err != nil {
		return err
	}
	return s.Ping(ctx)
}
