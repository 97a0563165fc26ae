package entity

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceJSON devuelve el precio como número JSON: el API rechaza price entre comillas.
// nil se conserva para los campos omitempty.
func PriceJSON(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := json.Number(d.String())
	return &n
}

// ProductStatus es la enumeración canónica del estado de moderación de un producto.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "disetujui"
	ProductStatusRejected ProductStatus = "ditolak"
	ProductStatusInactive ProductStatus = "tidak_aktif"
)

// ProductStatuses lista los estados canónicos en el orden de moderación.
func ProductStatuses() []ProductStatus {
	return []ProductStatus{ProductStatusPending, ProductStatusApproved, ProductStatusRejected, ProductStatusInactive}
}

// NormalizeProductStatus lleva variantes de escritura ("Tidak Aktif", "tidak-aktif", "DISETUJUI")
// a su token canónico. Tokens desconocidos se conservan (en minúsculas) para no perder información.
func NormalizeProductStatus(raw string) ProductStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return ProductStatus(s)
}

// IsKnown es false para tokens fuera de la enumeración canónica.
func (s ProductStatus) IsKnown() bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusRejected, ProductStatusInactive:
		return true
	}
	return false
}

func (s *ProductStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = NormalizeProductStatus(raw)
	return nil
}

// Product representa un producto publicado por una UMKM.
// Image siempre es una URL ya alojada (resultado de una subida previa).
type Product struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	OwnerName          string            `json:"owner_name,omitempty"`
	Description        string            `json:"description"`
	Price              decimal.Decimal   `json:"price"`
	Stock              int               `json:"stock"`
	Image              string            `json:"image"`
	PhoneNumber        string            `json:"phone_number"`
	Status             ProductStatus     `json:"status"`
	BusinessCategoryID int64             `json:"business_category_id"`
	SubSectorID        int64             `json:"sub_sector_id,omitempty"`
	UserID             int64             `json:"user_id"`
	User               *User             `json:"user,omitempty"`
	OnlineStoreLinks   []OnlineStoreLink `json:"online_store_links,omitempty"`
}

// UnmarshalJSON unifica status y status_produk (algunas versiones del API envían uno u otro).
func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product
	var aux struct {
		plain
		StatusProduk *ProductStatus `json:"status_produk"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Product(aux.plain)
	if p.Status == "" && aux.StatusProduk != nil {
		p.Status = *aux.StatusProduk
	}
	return nil
}

// MarshalJSON emite price como número; el resto de campos queda igual.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price *json.Number `json:"price"`
	}{plain(p), PriceJSON(&p.Price)})
}

// FirstStoreLink devuelve la URL del primer link de tienda online, o "".
func (p Product) FirstStoreLink() string {
	for _, l := range p.OnlineStoreLinks {
		if l.URL != "" {
			return l.URL
		}
	}
	return ""
}

// OnlineStoreLink es un link del producto a una tienda externa (Shopee, Tokopedia...).
type OnlineStoreLink struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	PlatformName string `json:"platform_name"`
	URL          string `json:"url"`
}
