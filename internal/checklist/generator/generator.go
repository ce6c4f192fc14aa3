// Package generator turns a permit blueprint into a project checklist.
package generator

import (
	"time"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
)

// Generate copies every blueprint item, in order, into a new checklist with
// status not_started. blueprintID is the jurisdiction id used for the lookup
// and now is the generation time; neither is read from the blueprint body or
// the wall clock. The result shares no memory with the blueprint.
func Generate(bp *domain.PermitBlueprint, blueprintID string, now time.Time) *domain.ProjectChecklist {
	items := make([]domain.ChecklistItem, 0, len(bp.ChecklistItems))
	for _, tmpl := range bp.ChecklistItems {
		items = append(items, domain.ChecklistItem{
			ChecklistItemTemplate: tmpl,
			Status:                domain.StatusNotStarted,
		})
	}

	return &domain.ProjectChecklist{
		BlueprintID: blueprintID,
		GeneratedAt: now.UTC(),
		Items:       items,
	}
}
