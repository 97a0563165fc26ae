package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/infrastructure/postgres"
	"github.com/jhoicas/ekraf-client/pkg/config"
)

// Requiere PostgreSQL: TEST_DATABASE_URL=postgres://... go test ./...
func TestSessionStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := postgres.NewSessionStore(pool)
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.Remove(ctx, "userToken", "userData"))

	_, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "userToken", "uno"))
	require.NoError(t, store.Set(ctx, "userToken", "dos"))
	v, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dos", v, "upsert reemplaza el valor")

	require.NoError(t, store.SetMany(ctx, map[string]string{"userToken": "tres", "userData": `{"id":1}`}))
	v, _, err = store.Get(ctx, "userData")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, v)

	require.NoError(t, store.Remove(ctx, "userToken", "userData"))
	_, ok, err = store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.False(t, ok)
}
