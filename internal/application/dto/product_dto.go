package dto

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// ProductFilter filtros del listado público de productos. Campos en cero no se envían.
type ProductFilter struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Q         string `query:"q"`
	Kategori  int64  `query:"kategori"`
	Subsector int64  `query:"subsector"`
}

// Values construye el query string con solo los filtros no vacíos.
func (f ProductFilter) Values() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Q != "" {
		v.Set("q", f.Q)
	}
	if f.Kategori > 0 {
		v.Set("kategori", strconv.FormatInt(f.Kategori, 10))
	}
	if f.Subsector > 0 {
		v.Set("subsector", strconv.FormatInt(f.Subsector, 10))
	}
	return v
}

// CreateProductRequest entrada para crear un producto. Image debe ser una URL ya subida.
type CreateProductRequest struct {
	Name               string          `json:"name"`
	OwnerName          string          `json:"owner_name,omitempty"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Stock              int             `json:"stock"`
	Image              string          `json:"image"`
	PhoneNumber        string          `json:"phone_number"`
	BusinessCategoryID int64           `json:"business_category_id"`
	SubSectorID        int64           `json:"sub_sector_id,omitempty"`
}

func (r CreateProductRequest) MarshalJSON() ([]byte, error) {
	type plain CreateProductRequest
	return json.Marshal(struct {
		plain
		Price *json.Number `json:"price"`
	}{plain(r), entity.PriceJSON(&r.Price)})
}

// UpdateProductRequest actualización parcial; nil = no se envía.
type UpdateProductRequest struct {
	Name               *string               `json:"name,omitempty"`
	OwnerName          *string               `json:"owner_name,omitempty"`
	Description        *string               `json:"description,omitempty"`
	Price              *decimal.Decimal      `json:"price,omitempty"`
	Stock              *int                  `json:"stock,omitempty"`
	Image              *string               `json:"image,omitempty"`
	PhoneNumber        *string               `json:"phone_number,omitempty"`
	Status             *entity.ProductStatus `json:"status,omitempty"`
	BusinessCategoryID *int64                `json:"business_category_id,omitempty"`
	SubSectorID        *int64                `json:"sub_sector_id,omitempty"`
}

func (r UpdateProductRequest) MarshalJSON() ([]byte, error) {
	type plain UpdateProductRequest
	return json.Marshal(struct {
		plain
		Price *json.Number `json:"price,omitempty"`
	}{plain(r), entity.PriceJSON(r.Price)})
}

// OnlineStoreLinkRequest alta de un link de tienda online.
type OnlineStoreLinkRequest struct {
	PlatformName string `json:"platform_name"`
	URL          string `json:"url"`
}

// UpdateOnlineStoreLinkRequest actualización parcial de un link.
type UpdateOnlineStoreLinkRequest struct {
	PlatformName *string `json:"platform_name,omitempty"`
	URL          *string `json:"url,omitempty"`
}
