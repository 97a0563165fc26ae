package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

func TestNormalizeProductStatus(t *testing.T) {
	cases := map[string]entity.ProductStatus{
		"pending":     entity.ProductStatusPending,
		"Disetujui":   entity.ProductStatusApproved,
		" DITOLAK ":   entity.ProductStatusRejected,
		"tidak aktif": entity.ProductStatusInactive,
		"Tidak Aktif": entity.ProductStatusInactive,
		"tidak-aktif": entity.ProductStatusInactive,
		"tidak_aktif": entity.ProductStatusInactive,
		"diarsipkan":  entity.ProductStatus("diarsipkan"),
	}
	for raw, want := range cases {
		got := entity.NormalizeProductStatus(raw)
		assert.Equal(t, want, got, "raw=%q", raw)
	}
	assert.False(t, entity.NormalizeProductStatus("diarsipkan").IsKnown())
	for _, s := range entity.ProductStatuses() {
		assert.True(t, s.IsKnown())
	}
}

func TestProduct_Unmarshal_StatusProdukSeUnifica(t *testing.T) {
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Batik","price":150000,"status_produk":"Tidak Aktif"}`), &p))

	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, entity.ProductStatusInactive, p.Status)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(150000)))
}

func TestProduct_Unmarshal_StatusTienePrioridad(t *testing.T) {
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(`{"status":"disetujui","status_produk":"pending"}`), &p))
	assert.Equal(t, entity.ProductStatusApproved, p.Status)
}

func TestProduct_Marshal_PrecioComoNumero(t *testing.T) {
	b, err := json.Marshal(entity.Product{Name: "Kopi", Price: decimal.RequireFromString("25000.5")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":25000.5`)
	assert.NotContains(t, string(b), "status_produk")
}

func TestProduct_Marshal_NoCambiaDecimalGlobal(t *testing.T) {
	assert.False(t, decimal.MarshalJSONWithoutQuotes)
	b, err := json.Marshal(decimal.NewFromInt(150000))
	require.NoError(t, err)
	assert.Equal(t, `"150000"`, string(b), "fuera de los precios decimal conserva su formato")

	var back entity.Product
	raw, err := json.Marshal(&entity.Product{ID: 1, Price: decimal.NewFromInt(150000), Status: entity.ProductStatusPending})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Price.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, entity.ProductStatusPending, back.Status)
}

func TestPriceJSON(t *testing.T) {
	assert.Nil(t, entity.PriceJSON(nil))
	d := decimal.RequireFromString("99.90")
	assert.Equal(t, "99.9", entity.PriceJSON(&d).String())
}

func TestProduct_FirstStoreLink(t *testing.T) {
	p := entity.Product{OnlineStoreLinks: []entity.OnlineStoreLink{{PlatformName: "x"}, {URL: "https://shopee.co.id/a"}}}
	assert.Equal(t, "https://shopee.co.id/a", p.FirstStoreLink())
	assert.Empty(t, entity.Product{}.FirstStoreLink())
}

func TestValidLevel(t *testing.T) {
	assert.True(t, entity.ValidLevel("umkm"))
	assert.True(t, entity.ValidLevel("superadmin"))
	assert.False(t, entity.ValidLevel("UMKM"))
	assert.False(t, entity.ValidLevel(""))
}

func TestAsset_Complete(t *testing.T) {
	assert.True(t, entity.Asset{URI: "file:///x.jpg", FileName: "x.jpg", Type: "image/jpeg"}.Complete())
	assert.False(t, entity.Asset{URI: "file:///x.jpg", FileName: "x.jpg"}.Complete())
}
