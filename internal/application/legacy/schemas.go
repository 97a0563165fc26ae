package legacy

// Esquemas v1: nombres del API anterior → nombres actuales.
// Al cambiar el backend de nuevo se agrega un esquema v2; los v1 no se editan.
var (
	CredentialsV1 = Schema{Name: "credentials", Version: 1, Fields: []FieldMapping{
		{Legacy: "u", Current: "usernameOrEmail"},
		{Legacy: "p", Current: "password"},
	}}

	RegistrationV1 = Schema{Name: "registration", Version: 1, Fields: []FieldMapping{
		{Legacy: "nama_user", Current: "name"},
		{Legacy: "username", Current: "username"},
		{Legacy: "email", Current: "email"},
		{Legacy: "password", Current: "password"},
		{Legacy: "jk", Current: "gender"},
		{Legacy: "nohp", Current: "phone_number"},
		{Legacy: "nama_usaha", Current: "business_name"},
		{Legacy: "status_usaha", Current: "business_status"},
		{Legacy: "id_kategori_usaha", Current: "business_category_id"},
	}}

	UserV1 = Schema{Name: "user", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_user", Current: "id"},
		{Legacy: "id_level", Current: "level_id"},
		{Legacy: "nama_user", Current: "name"},
		{Legacy: "jk", Current: "gender"},
		{Legacy: "nohp", Current: "phone_number"},
		{Legacy: "username", Current: "username"},
		{Legacy: "email", Current: "email"},
		{Legacy: "nama_usaha", Current: "business_name"},
		{Legacy: "status_usaha", Current: "business_status"},
		{Legacy: "verifiedAt", Current: "verified_at"},
		{Legacy: "id_kategori_usaha", Current: "business_category_id"},
		// Vistas embebidas con forma distinta: ToLegacyUser las arma a mano.
		{Legacy: "level", Current: ""},
		{Legacy: "tbl_level", Current: ""},
		{Legacy: "tbl_kategori_usaha", Current: ""},
		{Legacy: "", Current: "level"},
		{Legacy: "", Current: "business_category"},
	}}

	ProductV1 = Schema{Name: "product", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_produk", Current: "id"},
		{Legacy: "nama_produk", Current: "name"},
		{Legacy: "deskripsi", Current: "description"},
		{Legacy: "harga", Current: "price"},
		{Legacy: "stok", Current: "stock"},
		{Legacy: "nohp", Current: "phone_number"},
		{Legacy: "gambar", Current: "image"},
		{Legacy: "id_sub", Current: "sub_sector_id"},
		{Legacy: "", Current: "owner_name"},
		{Legacy: "", Current: "status"},
		{Legacy: "", Current: "business_category_id"},
		{Legacy: "", Current: "user_id"},
		{Legacy: "", Current: "user"},
		{Legacy: "", Current: "online_store_links"},
	}}

	OnlineStoreLinkV1 = Schema{Name: "online_store_link", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_link", Current: "id"},
		{Legacy: "nama_platform", Current: "platform_name"},
		{Legacy: "url", Current: "url"},
		{Legacy: "id_produk", Current: "product_id"},
	}}

	ArticleV1 = Schema{Name: "article", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_artikel", Current: "id"},
		{Legacy: "judul", Current: "title"},
		{Legacy: "isi_lengkap", Current: "content"},
		{Legacy: "gambar", Current: "thumbnail"},
		{Legacy: "deskripsi_singkat", Current: ""},
		{Legacy: "id_user", Current: ""},
		{Legacy: "tbl_user", Current: ""},
		{Legacy: "", Current: "slug"},
		{Legacy: "", Current: "is_featured"},
		{Legacy: "", Current: "artikel_kategori_id"},
		{Legacy: "", Current: "author_id"},
		{Legacy: "", Current: "author"},
		{Legacy: "", Current: "created_at"},
	}}

	BusinessCategoryV1 = Schema{Name: "business_category", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_kategori_usaha", Current: "id"},
		{Legacy: "nama_kategori", Current: "name"},
		{Legacy: "", Current: "image"},
		{Legacy: "", Current: "sub_sector_id"},
		{Legacy: "", Current: "description"},
	}}

	LevelV1 = Schema{Name: "level", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_level", Current: "id"},
		{Legacy: "level", Current: "name"},
	}}

	SubsectorV1 = Schema{Name: "subsector", Version: 1, Fields: []FieldMapping{
		{Legacy: "id_sub", Current: "id"},
		{Legacy: "sub_sektor", Current: "title"},
		{Legacy: "", Current: "slug"},
	}}
)

// Schemas devuelve todos los esquemas registrados.
func Schemas() []Schema {
	return []Schema{
		CredentialsV1, RegistrationV1, UserV1, ProductV1, OnlineStoreLinkV1,
		ArticleV1, BusinessCategoryV1, LevelV1, SubsectorV1,
	}
}
