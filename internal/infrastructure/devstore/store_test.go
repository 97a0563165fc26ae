package devstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
)

func newStore(t *testing.T) *devstore.Store {
	t.Helper()
	s, err := devstore.New(devstore.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	return s
}

func TestAuthenticate(t *testing.T) {
	s := newStore(t)

	u, err := s.Authenticate(entity.LevelUMKM, devstore.DemoUsername, devstore.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "Batik Dewani", u.BusinessName)
	assert.Equal(t, entity.LevelUMKM, u.LevelName())
	require.NotNil(t, u.BusinessCategory)
	assert.Equal(t, "Batik", u.BusinessCategory.Name)

	_, err = s.Authenticate(entity.LevelUMKM, devstore.DemoUsername, "salah")
	assert.ErrorIs(t, err, devstore.ErrInvalidCredentials)

	_, err = s.Authenticate(entity.LevelAdmin, devstore.DemoUsername, devstore.DemoPassword)
	assert.ErrorIs(t, err, devstore.ErrInvalidCredentials, "nivel distinto al del usuario")
}

func TestRegistroVerificacionYReset(t *testing.T) {
	s := newStore(t)
	in := dto.RegisterUMKMRequest{Name: "Sari", Username: "sari", Email: "sari@ekraf.local", Password: "rahasia"}

	token, err := s.RegisterUMKM(in)
	require.NoError(t, err)
	_, err = s.RegisterUMKM(in)
	assert.ErrorIs(t, err, devstore.ErrDuplicate)

	_, err = s.Authenticate(entity.LevelUMKM, "sari", "rahasia")
	assert.ErrorIs(t, err, devstore.ErrInvalidCredentials, "sin verificar")

	require.NoError(t, s.VerifyEmail(token))
	assert.ErrorIs(t, s.VerifyEmail(token), devstore.ErrInvalidToken, "token de un solo uso")
	_, err = s.Authenticate(entity.LevelUMKM, "sari@ekraf.local", "rahasia")
	require.NoError(t, err)

	reset := s.ForgotPassword("sari@ekraf.local")
	require.NotEmpty(t, reset)
	assert.Empty(t, s.ForgotPassword("nadie@ekraf.local"))
	require.NoError(t, s.ResetPassword(reset, "baru"))
	_, err = s.Authenticate(entity.LevelUMKM, "sari", "baru")
	require.NoError(t, err)
}

func TestProducts_FiltroYPaginacion(t *testing.T) {
	s := newStore(t)
	demo, err := s.Authenticate(entity.LevelUMKM, devstore.DemoUsername, devstore.DemoPassword)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := s.CreateProduct(demo.ID, dto.CreateProductRequest{Name: "Batik Mega Mendung", Image: "https://cdn/x.jpg"})
		require.NoError(t, err)
	}

	page := s.Products(dto.ProductFilter{Q: "batik", Page: 2, Limit: 2})
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Data, 2)

	page = s.Products(dto.ProductFilter{Q: "mega"})
	assert.Len(t, page.Data, 3)
	assert.Equal(t, entity.ProductStatusPending, page.Data[0].Status)
	assert.Equal(t, "Dewani", page.Data[0].OwnerName)

	page = s.Products(dto.ProductFilter{Page: 9})
	assert.Empty(t, page.Data)
}

func TestLinksYEstadisticas(t *testing.T) {
	s := newStore(t)
	p := s.Products(dto.ProductFilter{}).Data[0]

	l, err := s.AddLink(p.ID, dto.OnlineStoreLinkRequest{PlatformName: "Shopee", URL: "https://shopee.co.id/x"})
	require.NoError(t, err)
	url := "https://shopee.co.id/y"
	l, err = s.UpdateLink(p.ID, l.ID, dto.UpdateOnlineStoreLinkRequest{URL: &url})
	require.NoError(t, err)
	assert.Equal(t, "Shopee", l.PlatformName)

	got, err := s.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, url, got.FirstStoreLink())

	_, err = s.UpdateLink(p.ID, 999, dto.UpdateOnlineStoreLinkRequest{URL: &url})
	assert.ErrorIs(t, err, devstore.ErrNotFound)

	st := s.Statistics()
	assert.Equal(t, 2, st.TotalUsers)
	assert.Equal(t, 2, st.TotalProducts)
	assert.Equal(t, 1, st.UsersByLevel[entity.LevelUMKM])
	assert.Equal(t, 1, st.ProductsByStatus[string(entity.ProductStatusApproved)])
	assert.Equal(t, []string{"pending", "disetujui"}, s.ProductStatuses())
}
