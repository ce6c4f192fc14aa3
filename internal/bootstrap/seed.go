package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/repository"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// A seed file maps jurisdiction ids to blueprint documents:
//
//	los_angeles_county:
//	  jurisdictionName: Los Angeles County
//	  agencyName: LA County Public Works
//	  agencyWebsite: https://dpw.lacounty.gov
//	  checklistItems:
//	    - id: site-plan
//	      title: Site Plan
//	      description: Scaled drawing of the lot
//	      category: Drawings

type documentPutter interface {
	Put(ctx context.Context, collection, id string, data map[string]interface{}) error
}

// SeedBlueprints validates every blueprint read from r and writes them to
// store. Nothing is written unless every entry is valid.
func SeedBlueprints(ctx context.Context, store storage.DocumentStore, r io.Reader) (int, error) {
	p, ok := store.(documentPutter)
	if !ok {
		return 0, fmt.Errorf("store %T does not support seeding", store)
	}

	var docs map[string]map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	blueprints := make([]*domain.PermitBlueprint, len(ids))
	for i, id := range ids {
		bp, err := domain.ParseBlueprint(docs[id])
		if err != nil {
			return 0, fmt.Errorf("seed blueprint %q: %w", id, err)
		}
		blueprints[i] = bp
	}

	for i, id := range ids {
		if err := p.Put(ctx, repository.BlueprintCollection, id, domain.BlueprintDocument(blueprints[i])); err != nil {
			return i, fmt.Errorf("write blueprint %q: %w", id, err)
		}
	}
	return len(ids), nil
}

// WithBlueprintSeed seeds the store from path each time open succeeds.
// An empty path returns open unchanged.
func WithBlueprintSeed(open storage.OpenFunc, path string, lg *logger.Logger) storage.OpenFunc {
	if path == "" {
		return open
	}
	return func(ctx context.Context) (storage.DocumentStore, error) {
		store, err := open(ctx)
		if err != nil {
			return nil, err
		}

		n, err := seedFromFile(ctx, store, path)
		if err != nil {
			if c, ok := store.(io.Closer); ok {
				c.Close()
			}
			return nil, err
		}

		lg.Info("blueprints seeded", zap.Int("count", n), zap.String("file", path))
		return store, nil
	}
}

func seedFromFile(ctx context.Context, store storage.DocumentStore, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return SeedBlueprints(ctx, store, f)
}
