package pdf_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/pdf"
)

func TestFormatRupiah(t *testing.T) {
	cases := map[string]string{
		"0":         "Rp 0",
		"999":       "Rp 999",
		"150000":    "Rp 150.000",
		"1250000.6": "Rp 1.250.001",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatRupiah(decimal.RequireFromString(in)), in)
	}
}

func TestInventoryValue(t *testing.T) {
	products := []entity.Product{
		{Price: decimal.NewFromInt(150000), Stock: 2},
		{Price: decimal.RequireFromString("25000.50"), Stock: 4},
		{Price: decimal.NewFromInt(90000), Stock: 0},
	}
	assert.True(t, decimal.RequireFromString("400002").Equal(pdf.InventoryValue(products)))
}

func TestGenerateCatalog(t *testing.T) {
	owner := &entity.User{ID: 9, Name: "Dewani", BusinessName: "Batik Dewani", Email: "d@ekraf.id",
		BusinessCategory: &entity.BusinessCategory{Name: "Kriya"}}
	products := []entity.Product{
		{ID: 1, Name: "Batik Tulis", Price: decimal.NewFromInt(150000), Stock: 2, Status: entity.ProductStatusApproved,
			OnlineStoreLinks: []entity.OnlineStoreLink{{PlatformName: "Shopee", URL: "https://shopee.co.id/batik"}}},
		{ID: 2, Name: "Batik Cap", Price: decimal.NewFromInt(90000), Stock: 5, Status: entity.ProductStatusPending},
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerateCatalog(owner, products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateCatalog_SinProductos(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerateCatalog(&entity.User{Name: "Dewani"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateCatalog_SinDueno(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateCatalog(nil, nil)
	assert.Error(t, err)
}
