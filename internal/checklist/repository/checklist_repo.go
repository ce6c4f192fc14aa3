package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// ChecklistRepository persists generated checklists under their project.
type ChecklistRepository struct {
	store storage.DocumentStore
}

// NewChecklistRepository creates a new ChecklistRepository
func NewChecklistRepository(store storage.DocumentStore) *ChecklistRepository {
	return &ChecklistRepository{store: store}
}

// ChecklistCollection returns the checklists sub-collection path of a project.
func ChecklistCollection(projectID string) string {
	return fmt.Sprintf("projects/%s/checklists", projectID)
}

// Save writes the checklist as a new document and returns the assigned id.
// Store failures are wrapped with domain.ErrStoreWrite.
func (r *ChecklistRepository) Save(ctx context.Context, projectID string, c *domain.ProjectChecklist) (string, error) {
	id, err := r.store.Create(ctx, ChecklistCollection(projectID), domain.ChecklistDocument(c))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: store returned an empty id", domain.ErrStoreWrite)
	}
	c.ID = id
	return id, nil
}

// Get reads back a stored checklist.
func (r *ChecklistRepository) Get(ctx context.Context, projectID, checklistID string) (*domain.ProjectChecklist, error) {
	data, err := r.store.Get(ctx, ChecklistCollection(projectID), checklistID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist %s: %w", checklistID, err)
	}
	return domain.ParseChecklist(checklistID, data)
}
