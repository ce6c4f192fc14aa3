package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/metrics"
)

// GenerateChecklist generates a permit checklist for a project
func (h *Handler) GenerateChecklist(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.fail(c, http.StatusMethodNotAllowed, msgMethodNotAllowed, metrics.OutcomeMethodNotAllowed)
		return
	}

	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.FromContext(c.Request.Context()).LogError("bind_request", err)
		h.fail(c, http.StatusBadRequest, msgMissingFields, metrics.OutcomeBadRequest)
		return
	}

	checklist, err := h.svc.Generate(c.Request.Context(), domain.GenerateRequest{
		ProjectID:      body.ProjectID,
		ProjectAddress: body.ProjectAddress,
	})
	if err != nil {
		status, msg, outcome := classify(err)
		if status == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		h.fail(c, status, msg, outcome)
		return
	}

	h.record(metrics.OutcomeCreated)
	c.JSON(http.StatusCreated, generateResponse{
		Success:     true,
		Message:     msgCreated,
		ChecklistID: checklist.ID,
	})
}

// classify maps service errors to a status, a client message and a metrics
// outcome. Anything not recognised is a generic 500.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidProjectID):
		return http.StatusBadRequest, msgInvalidProjectID, metrics.OutcomeBadRequest
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, msgMissingFields, metrics.OutcomeBadRequest
	case errors.Is(err, domain.ErrJurisdictionNotFound):
		return http.StatusNotFound, msgJurisdictionNotFound, metrics.OutcomeJurisdictionNotFound
	case errors.Is(err, domain.ErrBlueprintNotFound):
		return http.StatusNotFound, msgBlueprintNotFound, metrics.OutcomeBlueprintNotFound
	case errors.Is(err, domain.ErrBlueprintInvalid):
		return http.StatusInternalServerError, msgInternal, metrics.OutcomeBlueprintInvalid
	case errors.Is(err, domain.ErrStoreWrite):
		return http.StatusInternalServerError, msgInternal, metrics.OutcomeStoreWriteFailed
	default:
		return http.StatusInternalServerError, msgInternal, metrics.OutcomeError
	}
}

func (h *Handler) fail(c *gin.Context, status int, msg, outcome string) {
	h.record(outcome)
	c.JSON(status, errorResponse{Success: false, Error: msg})
}

func (h *Handler) record(outcome string) {
	if h.metrics != nil {
		h.metrics.IncrementGeneration(outcome)
	}
}
