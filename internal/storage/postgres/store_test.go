package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func TestStore_Get(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectQuery(`SELECT data FROM documents WHERE collection = \$1 AND id = \$2`).
		WithArgs("permit_blueprints", "los_angeles_county").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"agencyName":"LA County Public Works","checklistItems":[]}`)))

	doc, err := s.Get(context.Background(), "permit_blueprints", "los_angeles_county")
	require.NoError(t, err)
	assert.Equal(t, "LA County Public Works", doc["agencyName"])
	assert.Equal(t, []interface{}{}, doc["checklistItems"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetNotFound(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectQuery(`SELECT data FROM documents`).
		WithArgs("permit_blueprints", "nowhere").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "permit_blueprints", "nowhere")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Create(t *testing.T) {
	s, mock := setupStore(t)
	s.newID = func() string { return "0b6f1c2e-0000-4000-8000-000000000001" }

	mock.ExpectExec(`INSERT INTO documents \(collection, id, data\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("projects/p-1/checklists", "0b6f1c2e-0000-4000-8000-000000000001", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.Create(context.Background(), "projects/p-1/checklists", map[string]interface{}{"blueprintId": "los_angeles_county"})
	require.NoError(t, err)
	assert.Equal(t, "0b6f1c2e-0000-4000-8000-000000000001", id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateFailure(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(`INSERT INTO documents`).
		WillReturnError(errors.New("connection reset"))

	id, err := s.Create(context.Background(), "projects/p-1/checklists", map[string]interface{}{})
	require.Error(t, err)
	assert.Empty(t, id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_EnsureSchema(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS documents`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Put(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(`INSERT INTO documents .* ON CONFLICT \(collection, id\) DO UPDATE`).
		WithArgs("permit_blueprints", "pima_county", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Put(context.Background(), "permit_blueprints", "pima_county", map[string]interface{}{"agencyName": "Pima County"}))
	require.NoError(t, mock.ExpectationsWereMet())
}
