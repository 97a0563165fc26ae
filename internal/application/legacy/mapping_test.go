package legacy_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/legacy"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

func TestSchemas_Validos(t *testing.T) {
	for _, s := range legacy.Schemas() {
		assert.NoError(t, s.Validate(), s.String())
	}
}

func TestSchema_Validate_Duplicado(t *testing.T) {
	s := legacy.Schema{Name: "x", Version: 1, Fields: []legacy.FieldMapping{
		{Legacy: "a", Current: "b"},
		{Legacy: "a", Current: "c"},
	}}
	assert.ErrorContains(t, s.Validate(), `"a" duplicado`)

	s = legacy.Schema{Name: "x", Version: 1, Fields: []legacy.FieldMapping{{}}}
	assert.Error(t, s.Validate())
}

// Cada entrada de cada tabla se prueba en ambas direcciones.
func TestSchemas_CampoPorCampo(t *testing.T) {
	for _, s := range legacy.Schemas() {
		for _, f := range s.Fields {
			name := s.String() + "/" + f.Legacy + "->" + f.Current
			t.Run(name, func(t *testing.T) {
				if f.Legacy != "" {
					got, err := s.ToCurrent(map[string]any{f.Legacy: "v"})
					require.NoError(t, err)
					if f.Current == "" {
						assert.Empty(t, got)
					} else {
						assert.Equal(t, map[string]any{f.Current: "v"}, got)
					}
				}
				if f.Current != "" {
					got, err := s.ToLegacy(map[string]any{f.Current: "v"})
					require.NoError(t, err)
					if f.Legacy == "" {
						assert.Empty(t, got)
					} else {
						assert.Equal(t, map[string]any{f.Legacy: "v"}, got)
					}
				}
			})
		}
	}
}

func TestSchema_CampoDesconocido(t *testing.T) {
	_, err := legacy.ProductV1.ToCurrent(map[string]any{"nama_produk": "x", "warna": "merah"})
	assert.ErrorIs(t, err, legacy.ErrUnknownField)
	assert.ErrorContains(t, err, "product/v1")

	_, err = legacy.ProductV1.ToLegacy(map[string]any{"color": "red"})
	assert.ErrorIs(t, err, legacy.ErrUnknownField)
}

func jsonTags(v any) []string {
	var tags []string
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Un campo nuevo en un struct sin entrada en su tabla rompe este test.
func TestSchemas_CubrenTodosLosCampos(t *testing.T) {
	cases := []struct {
		schema  legacy.Schema
		legacy  []any
		current []any
	}{
		{legacy.CredentialsV1, []any{legacy.Credentials{}}, []any{dto.LoginRequest{}}},
		{legacy.RegistrationV1, []any{legacy.RegistrationData{}}, []any{dto.RegisterUMKMRequest{}}},
		{legacy.UserV1, []any{legacy.User{}}, []any{entity.User{}, dto.UpdateUserRequest{}}},
		{legacy.ProductV1, []any{legacy.Product{}, legacy.ProductData{}},
			[]any{entity.Product{}, dto.CreateProductRequest{}, dto.UpdateProductRequest{}}},
		{legacy.OnlineStoreLinkV1, []any{legacy.OlshopLink{}, legacy.OlshopLinkData{}},
			[]any{entity.OnlineStoreLink{}, dto.OnlineStoreLinkRequest{}, dto.UpdateOnlineStoreLinkRequest{}}},
		{legacy.ArticleV1, []any{legacy.Article{}, legacy.ArticleData{}},
			[]any{entity.Article{}, dto.CreateArticleRequest{}, dto.UpdateArticleRequest{}}},
		{legacy.BusinessCategoryV1, []any{legacy.BusinessCategory{}}, []any{entity.BusinessCategory{}}},
		{legacy.LevelV1, []any{legacy.TblLevel{}}, []any{entity.Level{}}},
		{legacy.SubsectorV1, []any{legacy.Subsektor{}}, []any{entity.SubSector{}}},
	}
	for _, c := range cases {
		for _, v := range c.legacy {
			for _, tag := range jsonTags(v) {
				_, err := c.schema.ToCurrent(map[string]any{tag: 1})
				assert.NoError(t, err, "%s: %T.%s", c.schema, v, tag)
			}
		}
		for _, v := range c.current {
			for _, tag := range jsonTags(v) {
				_, err := c.schema.ToLegacy(map[string]any{tag: 1})
				assert.NoError(t, err, "%s: %T.%s", c.schema, v, tag)
			}
		}
	}
}

func TestConvert_ProductoV1(t *testing.T) {
	harga := decimal.RequireFromString("150000.50")
	in := legacy.ProductData{NamaProduk: "Batik Tulis", Harga: &harga, Stok: 4, IDSub: 2, Gambar: "https://cdn/b.jpg"}

	var out dto.CreateProductRequest
	require.NoError(t, legacy.Convert(legacy.ProductV1, in, &out, legacy.ToCurrent))
	assert.Equal(t, "Batik Tulis", out.Name)
	assert.True(t, harga.Equal(out.Price))
	assert.Equal(t, 4, out.Stock)
	assert.Equal(t, int64(2), out.SubSectorID)
	assert.Equal(t, "https://cdn/b.jpg", out.Image)
}

func TestConvert_UpdateParcialSoloCamposPresentes(t *testing.T) {
	var out dto.UpdateProductRequest
	require.NoError(t, legacy.Convert(legacy.ProductV1, legacy.ProductData{Stok: 7}, &out, legacy.ToCurrent))
	require.NotNil(t, out.Stock)
	assert.Equal(t, 7, *out.Stock)
	assert.Nil(t, out.Name)
	assert.Nil(t, out.Price)
	assert.Nil(t, out.Image)
}

func TestToLegacyUser_VistasEmbebidas(t *testing.T) {
	u := entity.User{
		ID: 9, Name: "Dewani", Username: "dewani", PhoneNumber: "0812", Gender: entity.GenderFemale,
		LevelID: 3, Level: &entity.Level{ID: 3, Name: "umkm"},
		BusinessCategoryID: 1, BusinessCategory: &entity.BusinessCategory{ID: 1, Name: "Kriya"},
	}
	got, err := legacy.ToLegacyUser(u)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.IDUser)
	assert.Equal(t, "Dewani", got.NamaUser)
	assert.Equal(t, "0812", got.NoHP)
	assert.Equal(t, entity.GenderFemale, got.JK)
	assert.Equal(t, int64(3), got.IDLevel)
	assert.Equal(t, "umkm", got.Level)
	require.NotNil(t, got.TblLevel)
	assert.Equal(t, "umkm", got.TblLevel.Level)
	require.NotNil(t, got.TblKategoriUsaha)
	assert.Equal(t, "Kriya", got.TblKategoriUsaha.NamaKategori)
}

func TestToLegacyProduct(t *testing.T) {
	p := entity.Product{ID: 5, Name: "Batik Cap", Price: decimal.NewFromInt(90000), Stock: 2,
		Status: entity.ProductStatusApproved, UserID: 9, SubSectorID: 2}
	got, err := legacy.ToLegacyProduct(p)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.IDProduk)
	assert.Equal(t, "Batik Cap", got.NamaProduk)
	require.NotNil(t, got.Harga)
	assert.True(t, decimal.NewFromInt(90000).Equal(*got.Harga))
	assert.Equal(t, int64(2), got.IDSub)
}
