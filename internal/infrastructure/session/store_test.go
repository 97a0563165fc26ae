package session_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/session"
)

func exerciseStore(t *testing.T, store ports.BatchSessionStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "userToken", "abc"))
	require.NoError(t, store.Set(ctx, "userData", `{"id":1}`))

	v, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, store.SetMany(ctx, map[string]string{"userToken": "def", "userData": `{"id":2}`}))
	v, _, err = store.Get(ctx, "userData")
	require.NoError(t, err)
	assert.Equal(t, `{"id":2}`, v)

	require.NoError(t, store.Remove(ctx, "userToken", "userData", "inexistente"))
	_, ok, err = store.Get(ctx, "userData")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, session.NewMemoryStore())
}

func TestMemoryStore_Concurrente(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "userToken", "t")
			_, _, _ = store.Get(ctx, "userToken")
		}()
	}
	wg.Wait()
	v, _, _ := store.Get(ctx, "userToken")
	assert.Equal(t, "t", v)
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, session.NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json")))
}

func TestFileStore_PersisteEntreInstancias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	require.NoError(t, session.NewFileStore(path).Set(ctx, "userToken", "persistido"))

	v, ok, err := session.NewFileStore(path).Get(ctx, "userToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persistido", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no-json"), 0o600))

	_, _, err := session.NewFileStore(path).Get(context.Background(), "userToken")
	assert.Error(t, err)
}
