//go:build unit

package kvstore_test

import (
	"io"
	"log/slog"
	"testing"

	"hotel-ops/internal/infra/kvstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSaveRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	logger := discardLogger()
	want := snapshot{Name: "rooms", Count: 6, Tags: []string{"a", "b"}}

	require.NoError(t, kvstore.Save(store, "test_key", want))
	got := kvstore.Load(store, logger, "test_key", snapshot{})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	store := kvstore.NewMemoryStore()
	def := snapshot{Name: "default"}

	got := kvstore.Load(store, discardLogger(), "absent", def)

	assert.Equal(t, def, got)
}

func TestLoadCorruptPayloadReturnsDefault(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set("broken", []byte("{not json")))
	def := snapshot{Name: "fallback", Count: 1}

	got := kvstore.Load(store, discardLogger(), "broken", def)

	assert.Equal(t, def, got)
}

func TestClear(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, kvstore.Save(store, "k", snapshot{Name: "x"}))

	require.NoError(t, kvstore.Clear(store, "k"))

	_, found, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, found)

	// clearing an absent key is fine
	require.NoError(t, kvstore.Clear(store, "k"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("hotel_rooms", []byte(`[{"id":"RM001"}]`)))

	data, found, err := store.Get("hotel_rooms")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"RM001"}]`, string(data))

	require.NoError(t, store.Delete("hotel_rooms"))
	_, found, err = store.Get("hotel_rooms")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte(`"v1"`)))
	require.NoError(t, store.Set("k", []byte(`"v2"`)))

	data, found, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"v2"`, string(data))
}

func TestStartEmptyFlag(t *testing.T) {
	store := kvstore.NewMemoryStore()
	logger := discardLogger()

	assert.False(t, kvstore.StartEmpty(store, logger))

	require.NoError(t, kvstore.SetStartEmpty(store, true))
	assert.True(t, kvstore.StartEmpty(store, logger))

	require.NoError(t, kvstore.SetStartEmpty(store, false))
	assert.False(t, kvstore.StartEmpty(store, logger))
}
