package http

import (
	"context"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/metrics"
)

// ChecklistGenerator is the service behind the handler.
type ChecklistGenerator interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.ProjectChecklist, error)
}

// Handler handles HTTP requests for checklist generation
type Handler struct {
	svc     ChecklistGenerator
	metrics *metrics.Metrics
}

// New creates a new Handler. metrics may be nil.
func New(svc ChecklistGenerator, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, metrics: m}
}

type generateRequest struct {
	ProjectID      string `json:"projectId"`
	ProjectAddress string `json:"projectAddress"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ChecklistID string `json:"checklistId"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Client-facing error strings
const (
	msgMethodNotAllowed     = "Method not allowed"
	msgMissingFields        = "Missing projectId or projectAddress"
	msgInvalidProjectID     = "Invalid projectId"
	msgJurisdictionNotFound = "Could not determine jurisdiction for the provided address"
	msgBlueprintNotFound    = "No permit blueprint found for jurisdiction"
	msgInternal             = "An internal error occurred."
	msgCreated              = "Permit checklist generated successfully."
)
