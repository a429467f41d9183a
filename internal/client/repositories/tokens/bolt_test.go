package tokens

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imalento/Arcane-Tracker/internal/client/storage"
)

func newTestRepo(t *testing.T) *BoltRepository {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBoltRepository(db)
}

func TestLoad_AbsentReturnsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	token, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestSaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "abc"))

	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "abc"))
	require.NoError(t, repo.Clear(ctx))

	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	// clearing again is a no-op
	require.NoError(t, repo.Clear(ctx))
}
