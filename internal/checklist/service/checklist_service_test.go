package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/repository"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/resolver"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage/memory"
)

type resolverFunc func(ctx context.Context, address string) (string, error)

func (f resolverFunc) Resolve(ctx context.Context, address string) (string, error) {
	return f(ctx, address)
}

type recordingWriter struct {
	calls int
	err   error
}

func (w *recordingWriter) Save(_ context.Context, _ string, c *domain.ProjectChecklist) (string, error) {
	w.calls++
	if w.err != nil {
		return "", w.err
	}
	c.ID = "c-1"
	return c.ID, nil
}

type staticBlueprints struct {
	bp  *domain.PermitBlueprint
	err error
}

func (s staticBlueprints) Get(context.Context, string) (*domain.PermitBlueprint, error) {
	return s.bp, s.err
}

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func laBlueprint() *domain.PermitBlueprint {
	return &domain.PermitBlueprint{
		JurisdictionName: "Los Angeles County",
		AgencyName:       "LA County Public Works",
		AgencyWebsite:    "https://dpw.lacounty.gov",
		ChecklistItems: []domain.ChecklistItemTemplate{
			{ID: "a1", Title: "Foundation", Description: "...", Category: "structural"},
		},
	}
}

func TestChecklistService_Generate(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Put(context.Background(), repository.BlueprintCollection, "los_angeles_county",
		domain.BlueprintDocument(laBlueprint())))

	checklists := repository.NewChecklistRepository(store)
	svc := NewChecklistService(
		resolver.NewKeywordResolver(nil, ""),
		repository.NewBlueprintRepository(store),
		checklists,
	).WithClock(func() time.Time { return fixedNow })

	got, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProjectID:      "p-1",
		ProjectAddress: "123 Main St, Los Angeles",
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)

	stored, err := checklists.Get(context.Background(), "p-1", got.ID)
	require.NoError(t, err)
	assert.Equal(t, "los_angeles_county", stored.BlueprintID)
	assert.Equal(t, fixedNow, stored.GeneratedAt)
	assert.Equal(t, []domain.ChecklistItem{{
		ChecklistItemTemplate: domain.ChecklistItemTemplate{ID: "a1", Title: "Foundation", Description: "...", Category: "structural"},
		Status:                domain.StatusNotStarted,
	}}, stored.Items)
}

func TestChecklistService_NoWriteOnFailure(t *testing.T) {
	la := resolverFunc(func(context.Context, string) (string, error) { return "los_angeles_county", nil })

	tests := []struct {
		name       string
		req        domain.GenerateRequest
		resolver   resolver.Resolver
		blueprints BlueprintReader
		want       error
	}{
		{
			name:       "missing project id",
			req:        domain.GenerateRequest{ProjectAddress: "123 Main St"},
			resolver:   la,
			blueprints: staticBlueprints{bp: laBlueprint()},
			want:       domain.ErrMissingFields,
		},
		{
			name: "jurisdiction not found",
			req:  domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "nowhere"},
			resolver: resolverFunc(func(context.Context, string) (string, error) {
				return "", domain.ErrJurisdictionNotFound
			}),
			blueprints: staticBlueprints{bp: laBlueprint()},
			want:       domain.ErrJurisdictionNotFound,
		},
		{
			name:       "resolver returns empty id",
			req:        domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "nowhere"},
			resolver:   resolverFunc(func(context.Context, string) (string, error) { return " ", nil }),
			blueprints: staticBlueprints{bp: laBlueprint()},
			want:       domain.ErrJurisdictionNotFound,
		},
		{
			name:       "blueprint not found",
			req:        domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "123 Main St"},
			resolver:   la,
			blueprints: staticBlueprints{err: domain.ErrBlueprintNotFound},
			want:       domain.ErrBlueprintNotFound,
		},
		{
			name:       "blueprint invalid",
			req:        domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "123 Main St"},
			resolver:   la,
			blueprints: staticBlueprints{err: &domain.ValidationError{Field: "agencyName", Reason: "required"}},
			want:       domain.ErrBlueprintInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}
			svc := NewChecklistService(tt.resolver, tt.blueprints, w)

			_, err := svc.Generate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, w.calls)
		})
	}
}

func TestChecklistService_ResolverFailureIsUnclassified(t *testing.T) {
	w := &recordingWriter{}
	svc := NewChecklistService(
		resolverFunc(func(context.Context, string) (string, error) { return "", errors.New("geocoder timeout") }),
		staticBlueprints{bp: laBlueprint()},
		w,
	)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "123 Main St"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrJurisdictionNotFound)
	assert.Equal(t, 0, w.calls)
}

func TestChecklistService_StoreWriteFailure(t *testing.T) {
	w := &recordingWriter{err: domain.ErrStoreWrite}
	svc := NewChecklistService(
		resolver.NewKeywordResolver(nil, resolver.DefaultJurisdiction),
		staticBlueprints{bp: laBlueprint()},
		w,
	)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{ProjectID: "p-1", ProjectAddress: "123 Main St"})
	assert.ErrorIs(t, err, domain.ErrStoreWrite)
	assert.Equal(t, 1, w.calls)
}
