package ports

import (
	"context"
	"net/url"

	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// Request describe una llamada al API remoto relativa a la URL base.
type Request struct {
	Op     string // nombre corto para logs y métricas ("products.list")
	Method string
	Path   string // "/products/12"
	Query  url.Values
	Body   any // se serializa como JSON; nil = sin cuerpo
}

// Requester es el puerto de salida hacia el API REST.
// Do decodifica el cuerpo 2xx en out (puede ser nil) y devuelve siempre un *domain.APIError al fallar.
type Requester interface {
	Do(ctx context.Context, req Request, out any) error
}

// TokenSource entrega el token bearer vigente ("" si no hay sesión).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SessionStore es el almacén clave-valor opaco donde vive la sesión.
// Get devuelve ok=false si la clave no existe.
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// BatchSessionStore lo implementan los stores que escriben varias claves de una vez.
type BatchSessionStore interface {
	SessionStore
	SetMany(ctx context.Context, values map[string]string) error
}

// ImageUploader sube una imagen local a un host externo y devuelve su URL pública.
// La elección del host (ryzencdn, Cloudinary) queda detrás de este contrato.
type ImageUploader interface {
	Upload(ctx context.Context, asset entity.Asset) (string, error)
}

// CatalogPDFGenerator renderiza el catálogo de productos de una UMKM.
type CatalogPDFGenerator interface {
	GenerateCatalog(owner *entity.User, products []entity.Product) ([]byte, error)
}
