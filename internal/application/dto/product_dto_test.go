package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
)

func TestCreateProductRequest_PrecioComoNumero(t *testing.T) {
	b, err := json.Marshal(dto.CreateProductRequest{Name: "Kopi Gayo", Price: decimal.NewFromInt(45000), Image: "https://cdn/k.jpg"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Kopi Gayo","description":"","price":45000,"stock":0,"image":"https://cdn/k.jpg",
		"phone_number":"","business_category_id":0}`, string(b))
}

func TestUpdateProductRequest_PrecioOpcional(t *testing.T) {
	b, err := json.Marshal(dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	p := decimal.RequireFromString("12500.5")
	b, err = json.Marshal(&dto.UpdateProductRequest{Price: &p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12500.5}`, string(b))

	var back dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.Price)
	assert.True(t, p.Equal(*back.Price))
}

func TestProductFilter_Values(t *testing.T) {
	v := dto.ProductFilter{Page: 2, Q: "batik"}.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "batik", v.Get("q"))
	assert.False(t, v.Has("limit"))
	assert.False(t, v.Has("kategori"))
}
