package stores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	return store
}

func TestSetGetRemove(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, models.ErrSnapshotMissing)

	require.NoError(t, store.Set("access_token", "abc"))
	value, err := store.Get("access_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	// last write wins
	require.NoError(t, store.Set("access_token", "def"))
	value, err = store.Get("access_token")
	require.NoError(t, err)
	assert.Equal(t, "def", value)

	require.NoError(t, store.Remove("access_token"))
	_, err = store.Get("access_token")
	assert.ErrorIs(t, err, models.ErrSnapshotMissing)

	// removing again is fine
	require.NoError(t, store.Remove("access_token"))
}

func TestJSONRoundTrip(t *testing.T) {
	store := openTestStore(t)

	table := models.Table{ID: 5, TableNumber: "5", Location: "window row", Capacity: 4, Status: models.TableAvailable}
	require.NoError(t, store.SaveJSON(KeySelectedTable, &table))

	var loaded models.Table
	ok, err := store.LoadJSON(KeySelectedTable, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, table, loaded)
}

func TestLoadJSONMissing(t *testing.T) {
	store := openTestStore(t)

	var loaded models.Table
	ok, err := store.LoadJSON(KeySelectedTable, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptEntryDiscarded(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set(KeySelectedReservation, "{not json"))

	var loaded models.Reservation
	ok, err := store.LoadJSON(KeySelectedReservation, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)

	// the corrupt row is gone, not just skipped
	_, err = store.Get(KeySelectedReservation)
	assert.ErrorIs(t, err, models.ErrSnapshotMissing)
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAccessToken, "token-1"))

	reopened, err := Open(path)
	require.NoError(t, err)
	value, err := reopened.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", value)
}
