package settings

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliotui/folio/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(testDB(t))

	_, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	require.NoError(t, s.Set(ctx, "theme", "light")) // upsert

	v, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", v)
}

func TestResetAllDeletesEveryKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(testDB(t))

	for _, k := range []string{"theme", "font_size", "margin", "line_spacing"} {
		require.NoError(t, s.Set(ctx, k, "v"))
	}
	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	require.NoError(t, s.ResetAll(ctx))

	all, err = s.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	// a reset store accepts new values again
	require.NoError(t, s.Set(ctx, "theme", "dark"))
	v, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", v)
}

func TestResetAllOnEmptyStore(t *testing.T) {
	t.Parallel()
	s := New(testDB(t))
	require.NoError(t, s.ResetAll(context.Background()))
}
