package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asaraswat/ecotrackify/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestToken_AbsentReturnsEmpty(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSetToken_OverwritesPreviousValue(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "first"))
	require.NoError(t, s.SetToken(ctx, "second"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", token)
}

func TestClearToken(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.ClearToken(ctx))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestStartSession_StoresTokenAndDropsCachedBreakdown(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "old"))
	require.NoError(t, s.CacheFootprint(ctx, &models.Breakdown{Total: 9}))

	require.NoError(t, s.StartSession(ctx, "new"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)

	cached, err := s.CachedFootprint(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestStartSession_EmptyDatabase(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.StartSession(ctx, "tok"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestCacheFootprint_RoundTrip(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	got, err := s.CachedFootprint(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	b := &models.Breakdown{TransportationEmission: 10, EnergyConsumption: 5, WasteDisposal: 2, Total: 17}
	require.NoError(t, s.CacheFootprint(ctx, b))

	got, err = s.CachedFootprint(ctx)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestCacheFootprint_ReplacesWholesale(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.CacheFootprint(ctx, &models.Breakdown{TransportationEmission: 1, Total: 1}))
	require.NoError(t, s.CacheFootprint(ctx, &models.Breakdown{EnergyConsumption: 2, Total: 2}))

	got, err := s.CachedFootprint(ctx)
	require.NoError(t, err)
	// No merge with the previous record.
	assert.Zero(t, got.TransportationEmission)
	assert.Equal(t, 2.0, got.EnergyConsumption)
	assert.Equal(t, 2.0, got.Total)
}

func TestClear_WipesTokenAndCache(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.CacheFootprint(ctx, &models.Breakdown{Total: 3}))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	cached, err := s.CachedFootprint(ctx)
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()
	store, db, err := Open(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.SetToken(ctx, "tok"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}
