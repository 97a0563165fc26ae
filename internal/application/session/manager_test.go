package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/application/session"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	infrasession "github.com/jhoicas/ekraf-client/internal/infrastructure/session"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disco lleno")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("disco lleno") }
func (brokenStore) Remove(context.Context, ...string) error  { return errors.New("disco lleno") }

func TestManager_SaveYCurrent(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(infrasession.NewMemoryStore(), nil)

	assert.False(t, m.IsAuthenticated(ctx))
	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	user := &entity.User{ID: 7, Name: "Dewani", Username: "dewani", Level: &entity.Level{ID: 3, Name: "umkm"}}
	require.NoError(t, m.Save(ctx, entity.Session{Token: "tok-7", User: user}))

	assert.True(t, m.IsAuthenticated(ctx))
	cur, err = m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "tok-7", cur.Token)
	assert.Equal(t, user, cur.User)
}

func TestManager_ClearBorraAmbasClaves(t *testing.T) {
	ctx := context.Background()
	store := infrasession.NewMemoryStore()
	m := session.NewManager(store, nil)
	require.NoError(t, m.Save(ctx, entity.Session{Token: "t", User: &entity.User{ID: 1}}))

	require.NoError(t, m.Clear(ctx))

	_, ok, _ := store.Get(ctx, session.TokenKey)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, session.UserKey)
	assert.False(t, ok)
	u, err := m.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestManager_StoreRotoSeTrataComoSinToken(t *testing.T) {
	m := session.NewManager(brokenStore{}, nil)

	tok, err := m.Token(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, tok)
	assert.Error(t, m.SetToken(context.Background(), "x"))
}

func TestManager_UsuarioCorrupto(t *testing.T) {
	ctx := context.Background()
	store := infrasession.NewMemoryStore()
	require.NoError(t, store.Set(ctx, session.UserKey, "{roto"))

	_, err := session.NewManager(store, nil).User(ctx)
	assert.Error(t, err)
}

// countingStore registra cómo escribe el manager.
type countingStore struct {
	*infrasession.MemoryStore
	sets, batches int
}

func (c *countingStore) Set(ctx context.Context, k, v string) error {
	c.sets++
	return c.MemoryStore.Set(ctx, k, v)
}

func (c *countingStore) SetMany(ctx context.Context, values map[string]string) error {
	c.batches++
	return c.MemoryStore.SetMany(ctx, values)
}

func TestManager_SaveEnLote(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: infrasession.NewMemoryStore()}
	m := session.NewManager(store, nil)

	require.NoError(t, m.Save(ctx, entity.Session{Token: "t", User: &entity.User{ID: 1}}))
	assert.Equal(t, 1, store.batches)
	assert.Zero(t, store.sets)

	// sin usuario se escribe el token y se borra el usuario anterior
	require.NoError(t, m.Save(ctx, entity.Session{Token: "t2"}))
	assert.Equal(t, 1, store.batches)
	assert.Equal(t, 1, store.sets)

	tok, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", tok)
	u, err := m.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestManager_SaveSinUsuarioNoHeredaElAnterior(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(infrasession.NewMemoryStore(), nil)

	require.NoError(t, m.Save(ctx, entity.Session{Token: "tok-A", User: &entity.User{ID: 1, Name: "A"}}))
	require.NoError(t, m.Save(ctx, entity.Session{Token: "tok-B"}))

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "tok-B", cur.Token)
	assert.Nil(t, cur.User)
}

// plainStore no admite lotes y falla al escribir la clave indicada.
type plainStore struct {
	data    map[string]string
	failKey string
}

func (p *plainStore) Get(_ context.Context, k string) (string, bool, error) {
	v, ok := p.data[k]
	return v, ok, nil
}

func (p *plainStore) Set(_ context.Context, k, v string) error {
	if k == p.failKey {
		return errors.New("disco lleno")
	}
	p.data[k] = v
	return nil
}

func (p *plainStore) Remove(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(p.data, k)
	}
	return nil
}

func TestManager_SaveSinLoteFalloDelUsuarioLimpiaLaSesion(t *testing.T) {
	ctx := context.Background()
	store := &plainStore{data: map[string]string{}}
	m := session.NewManager(store, nil)
	require.NoError(t, m.Save(ctx, entity.Session{Token: "tok-A", User: &entity.User{ID: 1, Name: "A"}}))

	store.failKey = session.UserKey
	err := m.Save(ctx, entity.Session{Token: "tok-B", User: &entity.User{ID: 2, Name: "B"}})
	assert.Error(t, err)

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur, "ni token nuevo con usuario viejo ni sesión a medias")
	assert.Empty(t, store.data)
}

func TestManager_SaveSinLoteFalla(t *testing.T) {
	err := session.NewManager(brokenStore{}, nil).Save(context.Background(),
		entity.Session{Token: "t", User: &entity.User{ID: 1}})
	assert.Error(t, err)
}
