package domain

import "time"

// ChecklistItemTemplate is a single required item of a permit blueprint.
type ChecklistItemTemplate struct {
	ID          string
	Title       string
	Description string
	Category    string
}

// PermitBlueprint is the master checklist template for one jurisdiction.
// It is keyed externally by the jurisdiction id.
type PermitBlueprint struct {
	JurisdictionName string
	AgencyName       string
	AgencyWebsite    string
	ChecklistItems   []ChecklistItemTemplate
}

// ItemStatus constants
const (
	StatusNotStarted = "not_started"
)

// ChecklistItem is a blueprint item instantiated for a project.
type ChecklistItem struct {
	ChecklistItemTemplate
	Status string
}

// ProjectChecklist is the checklist generated for a project from a blueprint.
// ID is empty until the checklist is persisted.
type ProjectChecklist struct {
	ID          string
	BlueprintID string
	GeneratedAt time.Time
	Items       []ChecklistItem
}

// GenerateRequest is the inbound request to generate a checklist.
type GenerateRequest struct {
	ProjectID      string
	ProjectAddress string
}
