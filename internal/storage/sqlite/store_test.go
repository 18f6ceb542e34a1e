package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyasar/staffdir/internal/model"
)

// Unique in-memory database per test keeps them isolated.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewInMemory(context.Background(), "testdb_"+ulid.Make().String())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_MissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, model.KeyEmployeeState, `{"employees":[]}`))

	got, err := s.Get(ctx, model.KeyEmployeeState)
	require.NoError(t, err)
	assert.Equal(t, `{"employees":[]}`, got)
}

func TestSet_Overwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, model.KeyPreferredLanguage, "en"))
	require.NoError(t, s.Set(ctx, model.KeyPreferredLanguage, "tr"))

	got, err := s.Get(ctx, model.KeyPreferredLanguage)
	require.NoError(t, err)
	assert.Equal(t, "tr", got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, model.KeyEmployeeViewMode, "list"))
	require.NoError(t, s.Delete(ctx, model.KeyEmployeeViewMode))

	_, err := s.Get(ctx, model.KeyEmployeeViewMode)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, model.KeyEmployeeViewMode))
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, model.KeyEmployeeViewMode, "table"))
	require.NoError(t, s.Set(ctx, model.KeyPreferredLanguage, "tr"))

	mode, err := s.Get(ctx, model.KeyEmployeeViewMode)
	require.NoError(t, err)
	lang, err := s.Get(ctx, model.KeyPreferredLanguage)
	require.NoError(t, err)

	assert.Equal(t, "table", mode)
	assert.Equal(t, "tr", lang)
}

func TestNew_ReopensExistingFile(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	s, err := New(ctx, dir, "staffdir")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, model.KeyPreferredLanguage, "tr"))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dir, "staffdir")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, model.KeyPreferredLanguage)
	require.NoError(t, err)
	assert.Equal(t, "tr", got)
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New(context.Background(), t.TempDir(), "")
	require.Error(t, err)
}

func TestGet_QueryError(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbmock.ExpectQuery("SELECT value FROM app_state").
		WithArgs("employeeState").
		WillReturnError(assert.AnError)

	s := NewWithDB(db)

	_, err = s.Get(context.Background(), "employeeState")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, dbmock.ExpectationsWereMet())
}

func TestSet_ExecError(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbmock.ExpectExec("INSERT INTO app_state").
		WithArgs("employeeState", "{}").
		WillReturnError(assert.AnError)

	s := NewWithDB(db)

	err = s.Set(context.Background(), "employeeState", "{}")
	require.Error(t, err)
	require.NoError(t, dbmock.ExpectationsWereMet())
}
