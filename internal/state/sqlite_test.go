package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A pooled second connection would see its own empty in-memory DB.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_AbsentKeyIsNilNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	v, err := s.Get(ctx, "gallery_user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_InsertAndOverwrite(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gallery_wishlist", []byte(`[1,2]`)))
	v, err := s.Get(ctx, "gallery_wishlist")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), v)

	require.NoError(t, s.Set(ctx, "gallery_wishlist", []byte(`[2]`)))
	v, err = s.Get(ctx, "gallery_wishlist")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), v)
}

func TestGetMany_SkipsAbsentKeys(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gallery_user", []byte(`{"id":1}`)))
	require.NoError(t, s.Set(ctx, "gallery_wishlist", []byte(`[3]`)))

	got, err := s.GetMany(ctx, "gallery_user", "gallery_wishlist", "gallery_purchases")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"gallery_user":     []byte(`{"id":1}`),
		"gallery_wishlist": []byte(`[3]`),
	}, got)

	got, err = s.GetMany(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gallery_user", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "gallery_user"))

	v, err := s.Get(ctx, "gallery_user")
	require.NoError(t, err)
	assert.Nil(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "gallery_user"))
}

func TestListAndClear(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOpen_MigratesAndRoundTrips(t *testing.T) {
	ctx := context.Background()

	s, db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, s.Set(ctx, "gallery_user", []byte(`{"id":1}`)))
	v, err := s.Get(ctx, "gallery_user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), v)
}
