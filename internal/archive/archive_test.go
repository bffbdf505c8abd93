package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history", "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	store := openStore(t)

	_, err := store.List(0)
	assert.NoError(t, err)
}

func TestSaveAndGet(t *testing.T) {
	store := openStore(t)

	id, err := store.Save("Brigada Sur", []byte(`{"nombre":"Brigada Sur"}`))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Brigada Sur", rec.Brigade)
	assert.JSONEq(t, `{"nombre":"Brigada Sur"}`, string(rec.Payload))
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestGet_UnknownID(t *testing.T) {
	store := openStore(t)

	_, err := store.Get("no-such-id")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatest(t *testing.T) {
	store := openStore(t)

	_, err := store.Latest()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Save("Primera", []byte(`{}`))
	require.NoError(t, err)
	_, err = store.Save("Segunda", []byte(`{}`))
	require.NoError(t, err)

	rec, err := store.Latest()
	require.NoError(t, err)
	// Same-second saves tie on created_at and fall back to id order, so
	// either row is acceptable here.
	assert.Contains(t, []string{"Primera", "Segunda"}, rec.Brigade)
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	store := openStore(t)
	for _, name := range []string{"Una", "Dos", "Tres"} {
		_, err := store.Save(name, []byte(`{}`))
		require.NoError(t, err)
	}

	all, err := store.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
