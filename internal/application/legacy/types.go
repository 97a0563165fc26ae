package legacy

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// Tipos con los nombres de campo del API v1. Los campos usan omitempty para que una
// conversión solo lleve lo que el llamador llenó.

// Credentials forma antigua de login({u, p}).
type Credentials struct {
	U string `json:"u"`
	P string `json:"p"`
}

// RegistrationData registro UMKM v1.
type RegistrationData struct {
	NamaUser        string `json:"nama_user,omitempty"`
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	Password        string `json:"password,omitempty"`
	JK              string `json:"jk,omitempty"`
	NoHP            string `json:"nohp,omitempty"`
	NamaUsaha       string `json:"nama_usaha,omitempty"`
	StatusUsaha     string `json:"status_usaha,omitempty"`
	IDKategoriUsaha int64  `json:"id_kategori_usaha,omitempty"`
}

// User usuario v1.
type User struct {
	IDUser           int64           `json:"id_user,omitempty"`
	IDLevel          int64           `json:"id_level,omitempty"`
	NamaUser         string          `json:"nama_user,omitempty"`
	JK               string          `json:"jk,omitempty"`
	NoHP             string          `json:"nohp,omitempty"`
	Username         string          `json:"username,omitempty"`
	Email            string          `json:"email,omitempty"`
	Level            string          `json:"level,omitempty"`
	NamaUsaha        string          `json:"nama_usaha,omitempty"`
	StatusUsaha      string          `json:"status_usaha,omitempty"`
	VerifiedAt       string          `json:"verifiedAt,omitempty"`
	IDKategoriUsaha  int64           `json:"id_kategori_usaha,omitempty"`
	TblLevel         *TblLevelRef    `json:"tbl_level,omitempty"`
	TblKategoriUsaha *TblKategoriRef `json:"tbl_kategori_usaha,omitempty"`
}

// TblLevelRef vista embebida del nivel en User v1.
type TblLevelRef struct {
	Level string `json:"level"`
}

// TblKategoriRef vista embebida de la categoría en User v1.
type TblKategoriRef struct {
	NamaKategori string `json:"nama_kategori"`
}

// Product producto v1.
type Product struct {
	IDProduk   int64            `json:"id_produk,omitempty"`
	NamaProduk string           `json:"nama_produk,omitempty"`
	Deskripsi  string           `json:"deskripsi,omitempty"`
	Harga      *decimal.Decimal `json:"harga,omitempty"`
	Stok       int              `json:"stok,omitempty"`
	NoHP       string           `json:"nohp,omitempty"`
	Gambar     string           `json:"gambar,omitempty"`
	IDSub      int64            `json:"id_sub,omitempty"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Harga *json.Number `json:"harga,omitempty"`
	}{plain(p), entity.PriceJSON(p.Harga)})
}

// ProductData alta/edición de producto v1 (CreateProductData).
type ProductData struct {
	NamaProduk string           `json:"nama_produk,omitempty"`
	Harga      *decimal.Decimal `json:"harga,omitempty"`
	Stok       int              `json:"stok,omitempty"`
	IDSub      int64            `json:"id_sub,omitempty"`
	Deskripsi  string           `json:"deskripsi,omitempty"`
	NoHP       string           `json:"nohp,omitempty"`
	Gambar     string           `json:"gambar,omitempty"`
}

func (p ProductData) MarshalJSON() ([]byte, error) {
	type plain ProductData
	return json.Marshal(struct {
		plain
		Harga *json.Number `json:"harga,omitempty"`
	}{plain(p), entity.PriceJSON(p.Harga)})
}

// OlshopLink link de tienda online v1.
type OlshopLink struct {
	IDLink       int64  `json:"id_link,omitempty"`
	NamaPlatform string `json:"nama_platform,omitempty"`
	URL          string `json:"url,omitempty"`
	IDProduk     int64  `json:"id_produk,omitempty"`
}

// OlshopLinkData alta/edición de link v1.
type OlshopLinkData struct {
	NamaPlatform string `json:"nama_platform,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Article artículo v1.
type Article struct {
	IDArtikel        int64    `json:"id_artikel,omitempty"`
	Judul            string   `json:"judul,omitempty"`
	DeskripsiSingkat string   `json:"deskripsi_singkat,omitempty"`
	IsiLengkap       string   `json:"isi_lengkap,omitempty"`
	Gambar           string   `json:"gambar,omitempty"`
	TblUser          *TblUser `json:"tbl_user,omitempty"`
}

// TblUser autor embebido en Article v1.
type TblUser struct {
	NamaUser string `json:"nama_user"`
	Email    string `json:"email"`
}

// ArticleData alta/edición de artículo v1 (CreateArticleData / UpdateArticleData).
type ArticleData struct {
	Judul            string `json:"judul,omitempty"`
	IsiLengkap       string `json:"isi_lengkap,omitempty"`
	IDUser           int64  `json:"id_user,omitempty"`
	DeskripsiSingkat string `json:"deskripsi_singkat,omitempty"`
	Gambar           string `json:"gambar,omitempty"`
}

// BusinessCategory categoría v1.
type BusinessCategory struct {
	IDKategoriUsaha int64  `json:"id_kategori_usaha,omitempty"`
	NamaKategori    string `json:"nama_kategori,omitempty"`
}

// TblLevel nivel v1.
type TblLevel struct {
	IDLevel int64  `json:"id_level,omitempty"`
	Level   string `json:"level,omitempty"`
}

// Subsektor subsector v1.
type Subsektor struct {
	IDSub     int64  `json:"id_sub,omitempty"`
	SubSektor string `json:"sub_sektor,omitempty"`
}
