package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/imalento/Arcane-Tracker/internal/client/models"
	"github.com/imalento/Arcane-Tracker/internal/client/storage"
)

func newTestRepo(t *testing.T) *BoltRepository {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBoltRepository(db)
}

func summary(id, deck string) *models.GameSummary {
	return &models.GameSummary{
		ID:       id,
		Win:      true,
		DeckName: deck,
		GameType: models.GameTypeRanked,
		Date:     "2017-01-01T00:00:00.000Z",
	}
}

func TestPrepend_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, summary("g1", "Zoo")))
	require.NoError(t, repo.Prepend(ctx, summary("g2", "Control")))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "g2", list[0].ID)
	assert.Equal(t, "g1", list[1].ID)
}

func TestAll_EmptyOnFirstRun(t *testing.T) {
	repo := newTestRepo(t)

	list, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSetRemoteURL(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, summary("g1", "Zoo")))
	require.NoError(t, repo.Prepend(ctx, summary("g2", "Control")))

	require.NoError(t, repo.SetRemoteURL(ctx, "g1", "https://hsreplay.net/r/1"))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", list[0].RemoteURL)
	assert.Equal(t, "https://hsreplay.net/r/1", list[1].RemoteURL)
}

func TestSetRemoteURL_UnknownID(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.SetRemoteURL(context.Background(), "missing", "https://hsreplay.net/r/1")
	require.Error(t, err)
}

func TestClear_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, summary("g1", "Zoo")))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAll_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.db")
	ctx := context.Background()

	db, err := storage.Open(path)
	require.NoError(t, err)
	repo := NewBoltRepository(db)
	require.NoError(t, repo.Prepend(ctx, summary("g1", "Zoo")))
	require.NoError(t, db.Close())

	var db2 *bolt.DB
	db2, err = storage.Open(path)
	require.NoError(t, err)
	defer db2.Close()

	list, err := NewBoltRepository(db2).All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Zoo", list[0].DeckName)
}
