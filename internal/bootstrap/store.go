package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/config"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
	fsstore "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage/firestore"
	memstore "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage/memory"
	pgstore "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage/postgres"
	redisstore "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage/redis"
)

// StoreOpener returns the OpenFunc for the configured driver. Nothing is
// dialled until the returned function is called.
func StoreOpener(cfg config.StoreConfig) (storage.OpenFunc, error) {
	switch cfg.Driver {
	case config.DriverFirestore:
		return func(ctx context.Context) (storage.DocumentStore, error) {
			return fsstore.Open(ctx, fsstore.Config{
				ProjectID:       cfg.Firebase.ProjectID,
				CredentialsPath: cfg.Firebase.CredentialsPath,
			})
		}, nil

	case config.DriverRedis:
		return func(ctx context.Context) (storage.DocumentStore, error) {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := client.Ping(ctx).Err(); err != nil {
				client.Close()
				return nil, fmt.Errorf("redis ping: %w", err)
			}
			return redisstore.New(client), nil
		}, nil

	case config.DriverPostgres:
		return func(ctx context.Context) (storage.DocumentStore, error) {
			db, err := OpenDB(ctx, DBOptions{DSN: cfg.DSN})
			if err != nil {
				return nil, err
			}
			s := pgstore.New(db)
			if err := s.EnsureSchema(ctx); err != nil {
				db.Close()
				return nil, err
			}
			return s, nil
		}, nil

	case config.DriverMemory:
		return func(context.Context) (storage.DocumentStore, error) {
			return memstore.New(), nil
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
