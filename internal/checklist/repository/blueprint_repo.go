package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// BlueprintCollection holds one document per jurisdiction id.
const BlueprintCollection = "permit_blueprints"

// BlueprintRepository reads permit blueprints. Reads always go to the store.
type BlueprintRepository struct {
	store storage.DocumentStore
}

// NewBlueprintRepository creates a new BlueprintRepository
func NewBlueprintRepository(store storage.DocumentStore) *BlueprintRepository {
	return &BlueprintRepository{store: store}
}

// Get returns the validated blueprint for jurisdictionID. It fails with
// domain.ErrBlueprintNotFound when no document exists and with a
// *domain.ValidationError when the stored document is malformed.
func (r *BlueprintRepository) Get(ctx context.Context, jurisdictionID string) (*domain.PermitBlueprint, error) {
	data, err := r.store.Get(ctx, BlueprintCollection, jurisdictionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBlueprintNotFound, jurisdictionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint %s: %w", jurisdictionID, err)
	}

	bp, err := domain.ParseBlueprint(data)
	if err != nil {
		return nil, fmt.Errorf("blueprint %s: %w", jurisdictionID, err)
	}
	return bp, nil
}
