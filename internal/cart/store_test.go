package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cart.json")

	return NewFileStore(path, testLogger{}), path
}

type testLogger struct{}

func (testLogger) Infof(string, ...any)         {}
func (testLogger) Warnf(string, ...any)         {}
func (testLogger) Errorf(error, string, ...any) {}

func TestFileStore_SaveLoad(t *testing.T) {
	store, _ := newTestStore(t)

	saved := []Item{
		{Product: phone, Quantity: 2},
		{Product: earbuds, Quantity: 1},
	}
	store.Save(saved)

	loaded := store.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, int64(1), loaded[0].Product.ID)
	assert.Equal(t, int64(2), loaded[0].Quantity)
	assert.Equal(t, "Wireless Earbuds Pro", loaded[1].Product.Name)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	loaded := store.Load()
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded := store.Load()
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestFileStore_Clear(t *testing.T) {
	store, path := newTestStore(t)

	store.Save([]Item{{Product: phone, Quantity: 1}})
	store.Clear()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Повторная очистка поверх отсутствующего файла безопасна
	store.Clear()
}
