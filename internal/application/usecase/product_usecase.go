package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// Mensajes de la precondición de imagen.
const (
	MsgImageRequired = "Gambar produk wajib diunggah terlebih dahulu."
	MsgImageInvalid  = "URL gambar produk tidak valid."
)

// ProductUseCase listado público y mantenimiento de productos y sus links de tienda.
// El cliente nunca envía bytes de imagen por estas rutas: Image es siempre una URL ya subida.
type ProductUseCase struct {
	api ports.Requester
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api ports.Requester) *ProductUseCase {
	return &ProductUseCase{api: api}
}

// List devuelve una página del catálogo público. El orden lo decide el servidor.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) (*dto.Page[entity.Product], error) {
	var page dto.Page[entity.Product]
	if err := call(ctx, uc.api, get("products.list", "/products", f.Values()), &page, "mengambil daftar produk"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID devuelve un producto (público).
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := fetchData[entity.Product](ctx, uc.api, get("products.get", pathID("/products", id), nil),
		fmt.Sprintf("mengambil produk #%d", id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create publica un producto. Falla localmente, sin tocar la red, si Image no es una URL subida.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	const action = "membuat produk"
	if err := ValidateImageURL(in.Image); err != nil {
		return nil, domain.Normalize(err, action)
	}
	p, err := fetchData[entity.Product](ctx, uc.api, post("products.create", "/products", in), action)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update modifica parcialmente un producto. Si se envía Image debe ser una URL subida.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	action := fmt.Sprintf("memperbarui produk #%d", id)
	if in.Image != nil {
		if err := ValidateImageURL(*in.Image); err != nil {
			return nil, domain.Normalize(err, action)
		}
	}
	p, err := fetchData[entity.Product](ctx, uc.api, put("products.update", pathID("/products", id), in), action)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api, del("products.delete", pathID("/products", id)),
		fmt.Sprintf("menghapus produk #%d", id))
}

// CreateOnlineStoreLink agrega un link de tienda online al producto.
func (uc *ProductUseCase) CreateOnlineStoreLink(ctx context.Context, productID int64, in dto.OnlineStoreLinkRequest) (*entity.OnlineStoreLink, error) {
	l, err := fetchData[entity.OnlineStoreLink](ctx, uc.api,
		post("products.links.create", pathID("/products", productID)+"/links", in),
		fmt.Sprintf("menambah link ke produk #%d", productID))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateOnlineStoreLink modifica parcialmente un link de tienda online.
func (uc *ProductUseCase) UpdateOnlineStoreLink(ctx context.Context, productID, linkID int64, in dto.UpdateOnlineStoreLinkRequest) (*entity.OnlineStoreLink, error) {
	l, err := fetchData[entity.OnlineStoreLink](ctx, uc.api,
		put("products.links.update", pathID(pathID("/products", productID)+"/links", linkID), in),
		fmt.Sprintf("memperbarui link #%d", linkID))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ValidateImageURL exige una URL absoluta http(s): el resultado de una subida previa.
func ValidateImageURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return domain.Validation(MsgImageRequired)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Validation(MsgImageInvalid)
	}
	return nil
}
