package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/infrastructure/redis"
	"github.com/jhoicas/ekraf-client/pkg/config"
)

func TestSessionStore_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	rdb, err := redis.NewClient(ctx, config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseStore(t, rdb, "ekraf:")
	assert.False(t, mr.Exists("ekraf:userToken"))
}

func TestSessionStore_MiniredisCaido(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	rdb, err := redis.NewClient(ctx, config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	store := redis.NewSessionStore(rdb, "ekraf:")
	_, _, err = store.Get(ctx, "userToken")
	assert.Error(t, err)
	assert.Error(t, store.SetMany(ctx, map[string]string{"userToken": "x"}))
}

// Requiere un Redis real: TEST_REDIS_ADDR=127.0.0.1:6379 go test ./...
func TestSessionStore_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	rdb, err := redis.NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseStore(t, rdb, "ekraf-test:"+uuid.NewString()+":")
}

func exerciseStore(t *testing.T, rdb *goredis.Client, prefix string) {
	t.Helper()
	ctx := context.Background()
	store := redis.NewSessionStore(rdb, prefix)

	_, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "userToken", "abc"))
	v, ok, err := store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	raw, err := rdb.Get(ctx, prefix+"userToken").Result()
	require.NoError(t, err)
	assert.Equal(t, "abc", raw, "la clave se guarda con prefijo")

	require.NoError(t, store.SetMany(ctx, map[string]string{"userToken": "def", "userData": `{"id":1}`}))
	v, ok, err = store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.Equal(t, "def", v)
	v, ok, err = store.Get(ctx, "userData")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, v)

	require.NoError(t, store.Remove(ctx, "userToken", "userData"))
	_, ok, err = store.Get(ctx, "userToken")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Get(ctx, "userData")
	require.NoError(t, err)
	assert.False(t, ok)
}
