package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

func TestStore_CreateGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	doc := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"id": "a1"}},
	}
	id, err := s.Create(ctx, "projects/p-1/checklists", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// mutating the caller's copy must not reach the store
	doc["items"].([]interface{})[0].(map[string]interface{})["id"] = "zz"

	got, err := s.Get(ctx, "projects/p-1/checklists", id)
	require.NoError(t, err)
	assert.Equal(t, "a1", got["items"].([]interface{})[0].(map[string]interface{})["id"])

	_, err = s.Get(ctx, "projects/p-2/checklists", id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_PutList(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "permit_blueprints", "pima_county", map[string]interface{}{"agencyName": "Pima"}))
	require.NoError(t, s.Put(ctx, "permit_blueprints", "maricopa_county", map[string]interface{}{"agencyName": "Maricopa"}))

	ids, err := s.List(ctx, "permit_blueprints")
	require.NoError(t, err)
	assert.Equal(t, []string{"maricopa_county", "pima_county"}, ids)
}
