// Package firestore implements storage.DocumentStore on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// Config selects the Firebase project and credentials.
// Empty values fall back to Application Default Credentials.
type Config struct {
	ProjectID       string
	CredentialsPath string
}

// Store is a Firestore-backed document store.
type Store struct {
	client *firestore.Client
}

// Open initializes the Firebase app and its Firestore client.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var conf *firebase.Config
	if cfg.ProjectID != "" {
		conf = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return New(client), nil
}

// New wraps an existing Firestore client.
func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) collection(path string) (*firestore.CollectionRef, error) {
	ref := s.client.Collection(path)
	if ref == nil {
		return nil, fmt.Errorf("invalid collection path %q", path)
	}
	return ref, nil
}

// Get reads a document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	snap, err := coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return nil, storage.ErrNotFound
	}

	return snap.Data(), nil
}

// Create writes a new document under an auto-generated id.
func (s *Store) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}

	ref := coll.NewDoc()
	if _, err := ref.Create(ctx, data); err != nil {
		return "", fmt.Errorf("failed to create document in %s: %w", collection, err)
	}

	return ref.ID, nil
}

// Put writes a document under a known id, replacing any existing one.
func (s *Store) Put(ctx context.Context, collection, id string, data map[string]interface{}) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	if _, err := coll.Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Ping lists at most one collection to check connectivity.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

// Close closes the Firestore client
func (s *Store) Close() error {
	return s.client.Close()
}
