package legacy

import (
	"context"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/usecase"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// Valores por defecto que el registro v1 completaba implícitamente.
const (
	DefaultBusinessStatus     = entity.BusinessStatusNew
	DefaultBusinessCategoryID = int64(1)
	MsgUserUpdated            = "User updated successfully"
)

// convert envuelve Convert con la acción para el mensaje normalizado.
func convert(schema Schema, in, out any, dir Direction, action string) error {
	if err := Convert(schema, in, out, dir); err != nil {
		return domain.Normalize(err, action)
	}
	return nil
}

// ── Auth ────────────────────────────────────────────────────────────────────

// AuthAPI firmas antiguas sobre usecase.AuthUseCase.
type AuthAPI struct {
	auth *usecase.AuthUseCase
}

func NewAuthAPI(auth *usecase.AuthUseCase) *AuthAPI { return &AuthAPI{auth: auth} }

// Login forma antigua login({u, p}, level); level vacío = umkm.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials, level string) (*entity.Session, error) {
	if level == "" {
		level = entity.LevelUMKM
	}
	var in dto.LoginRequest
	if err := convert(CredentialsV1, creds, &in, ToCurrent, "melakukan login"); err != nil {
		return nil, err
	}
	return a.auth.Login(ctx, level, in)
}

// Register forma antigua register(RegistrationData).
func (a *AuthAPI) Register(ctx context.Context, data RegistrationData) (*dto.RegisterResponse, error) {
	var in dto.RegisterUMKMRequest
	if err := convert(RegistrationV1, data, &in, ToCurrent, "melakukan registrasi"); err != nil {
		return nil, err
	}
	if in.BusinessStatus == "" {
		in.BusinessStatus = DefaultBusinessStatus
	}
	if in.BusinessCategoryID == 0 {
		in.BusinessCategoryID = DefaultBusinessCategoryID
	}
	return a.auth.RegisterUMKM(ctx, in)
}

// ── Productos ───────────────────────────────────────────────────────────────

// ProductsAPI alias productsApi.*.
type ProductsAPI struct {
	products *usecase.ProductUseCase
}

func NewProductsAPI(products *usecase.ProductUseCase) *ProductsAPI {
	return &ProductsAPI{products: products}
}

func (p *ProductsAPI) GetAll(ctx context.Context, f dto.ProductFilter) (*dto.Page[entity.Product], error) {
	return p.products.List(ctx, f)
}

func (p *ProductsAPI) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	return p.products.GetByID(ctx, int64(id))
}

// Create acepta el payload v1 (nama_produk, harga, gambar...).
func (p *ProductsAPI) Create(ctx context.Context, data ProductData) (*entity.Product, error) {
	var in dto.CreateProductRequest
	if err := convert(ProductV1, data, &in, ToCurrent, "membuat produk"); err != nil {
		return nil, err
	}
	return p.products.Create(ctx, in)
}

// Update acepta campos v1; solo viajan los no vacíos.
func (p *ProductsAPI) Update(ctx context.Context, id int, data ProductData) (*entity.Product, error) {
	var in dto.UpdateProductRequest
	if err := convert(ProductV1, data, &in, ToCurrent, fmt.Sprintf("memperbarui produk #%d", id)); err != nil {
		return nil, err
	}
	return p.products.Update(ctx, int64(id), in)
}

func (p *ProductsAPI) Delete(ctx context.Context, id int) (*dto.Message, error) {
	return p.products.Delete(ctx, int64(id))
}

func (p *ProductsAPI) CreateLink(ctx context.Context, productID int, data OlshopLinkData) (*entity.OnlineStoreLink, error) {
	var in dto.OnlineStoreLinkRequest
	if err := convert(OnlineStoreLinkV1, data, &in, ToCurrent, fmt.Sprintf("menambah link ke produk #%d", productID)); err != nil {
		return nil, err
	}
	return p.products.CreateOnlineStoreLink(ctx, int64(productID), in)
}

func (p *ProductsAPI) UpdateLink(ctx context.Context, productID, linkID int, data OlshopLinkData) (*entity.OnlineStoreLink, error) {
	var in dto.UpdateOnlineStoreLinkRequest
	if err := convert(OnlineStoreLinkV1, data, &in, ToCurrent, fmt.Sprintf("memperbarui link #%d", linkID)); err != nil {
		return nil, err
	}
	return p.products.UpdateOnlineStoreLink(ctx, int64(productID), int64(linkID), in)
}

// ── Usuarios ────────────────────────────────────────────────────────────────

// UsersAPI alias usersApi.* (IDs numéricos).
type UsersAPI struct {
	users *usecase.UserUseCase
}

func NewUsersAPI(users *usecase.UserUseCase) *UsersAPI { return &UsersAPI{users: users} }

func (u *UsersAPI) GetOwnProfile(ctx context.Context) (*entity.User, error) { return u.users.Profile(ctx) }

func (u *UsersAPI) GetAll(ctx context.Context) ([]entity.User, error) { return u.users.List(ctx) }

func (u *UsersAPI) GetByID(ctx context.Context, id int) (*entity.User, error) {
	return u.users.GetByID(ctx, int64(id))
}

// Update acepta campos v1 y responde con el mensaje fijo de la versión anterior.
func (u *UsersAPI) Update(ctx context.Context, id int, data User) (*dto.Message, error) {
	var in dto.UpdateUserRequest
	if err := convert(UserV1, data, &in, ToCurrent, fmt.Sprintf("memperbarui pengguna #%d", id)); err != nil {
		return nil, err
	}
	if _, err := u.users.Update(ctx, int64(id), in); err != nil {
		return nil, err
	}
	return &dto.Message{Message: MsgUserUpdated}, nil
}

func (u *UsersAPI) Delete(ctx context.Context, id int) (*dto.Message, error) {
	return u.users.Delete(ctx, int64(id))
}

func (u *UsersAPI) GetProducts(ctx context.Context, userID int) ([]entity.Product, error) {
	return u.users.Products(ctx, int64(userID))
}

func (u *UsersAPI) GetArticles(ctx context.Context, userID int) ([]entity.Article, error) {
	return u.users.Articles(ctx, int64(userID))
}

// ── Artículos ───────────────────────────────────────────────────────────────

// ArticlesAPI alias articlesApi.*.
type ArticlesAPI struct {
	articles *usecase.ArticleUseCase
}

func NewArticlesAPI(articles *usecase.ArticleUseCase) *ArticlesAPI {
	return &ArticlesAPI{articles: articles}
}

// Create publica con is_featured=false, como la versión anterior.
func (a *ArticlesAPI) Create(ctx context.Context, data ArticleData) (*entity.Article, error) {
	var in dto.CreateArticleRequest
	if err := convert(ArticleV1, data, &in, ToCurrent, "membuat artikel"); err != nil {
		return nil, err
	}
	in.IsFeatured = false
	return a.articles.Create(ctx, in)
}

func (a *ArticlesAPI) GetByID(ctx context.Context, id int) (*entity.Article, error) {
	return a.articles.GetByID(ctx, int64(id))
}

// Update solo envía los campos no vacíos.
func (a *ArticlesAPI) Update(ctx context.Context, id int, data ArticleData) (*entity.Article, error) {
	var in dto.UpdateArticleRequest
	if err := convert(ArticleV1, data, &in, ToCurrent, fmt.Sprintf("memperbarui artikel #%d", id)); err != nil {
		return nil, err
	}
	return a.articles.Update(ctx, int64(id), in)
}

func (a *ArticlesAPI) Delete(ctx context.Context, id int) (*dto.Message, error) {
	return a.articles.Delete(ctx, int64(id))
}

// ── Categorías ──────────────────────────────────────────────────────────────

// KategoriUsahaAPI alias kategoriUsahaApi.*.
type KategoriUsahaAPI struct {
	categories *usecase.BusinessCategoryUseCase
}

func NewKategoriUsahaAPI(categories *usecase.BusinessCategoryUseCase) *KategoriUsahaAPI {
	return &KategoriUsahaAPI{categories: categories}
}

func (k *KategoriUsahaAPI) GetByID(ctx context.Context, id int) (*entity.BusinessCategory, error) {
	return k.categories.GetByID(ctx, int64(id))
}

func (k *KategoriUsahaAPI) Update(ctx context.Context, id int, name string) (*entity.BusinessCategory, error) {
	return k.categories.Update(ctx, int64(id), dto.UpdateBusinessCategoryRequest{Name: &name})
}

func (k *KategoriUsahaAPI) Delete(ctx context.Context, id int) (*dto.Message, error) {
	return k.categories.Delete(ctx, int64(id))
}

// ── Vistas v1 de entidades actuales ─────────────────────────────────────────

// ToLegacyUser convierte un usuario actual a la forma v1, incluidas las vistas embebidas.
func ToLegacyUser(u entity.User) (*User, error) {
	var out User
	if err := Convert(UserV1, u, &out, ToLegacy); err != nil {
		return nil, err
	}
	if name := u.LevelName(); name != "" {
		out.Level = name
		out.TblLevel = &TblLevelRef{Level: name}
	}
	if u.BusinessCategory != nil {
		out.TblKategoriUsaha = &TblKategoriRef{NamaKategori: u.BusinessCategory.Name}
	}
	return &out, nil
}

// ToLegacyProduct convierte un producto actual a la forma v1.
func ToLegacyProduct(p entity.Product) (*Product, error) {
	var out Product
	if err := Convert(ProductV1, p, &out, ToLegacy); err != nil {
		return nil, err
	}
	return &out, nil
}
