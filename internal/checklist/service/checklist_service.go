package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/generator"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/resolver"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
)

// BlueprintReader loads a validated blueprint by jurisdiction id.
type BlueprintReader interface {
	Get(ctx context.Context, jurisdictionID string) (*domain.PermitBlueprint, error)
}

// ChecklistWriter persists a checklist under a project and returns its id.
type ChecklistWriter interface {
	Save(ctx context.Context, projectID string, c *domain.ProjectChecklist) (string, error)
}

// ChecklistService generates and stores project checklists.
type ChecklistService struct {
	resolver   resolver.Resolver
	blueprints BlueprintReader
	checklists ChecklistWriter
	now        func() time.Time
}

// NewChecklistService creates a new ChecklistService
func NewChecklistService(r resolver.Resolver, blueprints BlueprintReader, checklists ChecklistWriter) *ChecklistService {
	return &ChecklistService{
		resolver:   r,
		blueprints: blueprints,
		checklists: checklists,
		now:        time.Now,
	}
}

// WithClock replaces the generation time source.
func (s *ChecklistService) WithClock(now func() time.Time) *ChecklistService {
	s.now = now
	return s
}

// Generate resolves the project's jurisdiction, instantiates its blueprint
// and saves the result. Nothing is written unless resolution and blueprint
// validation both succeed. The returned checklist carries the stored id.
func (s *ChecklistService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.ProjectChecklist, error) {
	log := logger.FromContext(ctx).With(zap.String("project_id", req.ProjectID))

	if err := domain.ValidateRequest(req); err != nil {
		return nil, err
	}

	jurisdictionID, err := s.resolver.Resolve(ctx, req.ProjectAddress)
	if err != nil {
		log.LogError("resolve_jurisdiction", err)
		if errors.Is(err, domain.ErrJurisdictionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve jurisdiction: %w", err)
	}
	if strings.TrimSpace(jurisdictionID) == "" {
		return nil, domain.ErrJurisdictionNotFound
	}
	log = log.With(zap.String("jurisdiction_id", jurisdictionID))

	bp, err := s.blueprints.Get(ctx, jurisdictionID)
	if err != nil {
		log.LogError("get_blueprint", err)
		return nil, err
	}

	checklist := generator.Generate(bp, jurisdictionID, s.now())

	if _, err := s.checklists.Save(ctx, req.ProjectID, checklist); err != nil {
		log.LogError("save_checklist", err)
		return nil, err
	}

	log.LogInfo("generate_checklist", "permit checklist generated",
		zap.String("checklist_id", checklist.ID),
		zap.Int("items", len(checklist.Items)),
	)
	return checklist, nil
}
