package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
)

// CatalogUseCase exporta el catálogo de productos de una UMKM como PDF.
type CatalogUseCase struct {
	users *UserUseCase
	pdf   ports.CatalogPDFGenerator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(users *UserUseCase, pdf ports.CatalogPDFGenerator) *CatalogUseCase {
	return &CatalogUseCase{users: users, pdf: pdf}
}

// Export descarga el usuario y sus productos y renderiza el PDF.
func (uc *CatalogUseCase) Export(ctx context.Context, userID int64) ([]byte, error) {
	action := fmt.Sprintf("membuat katalog pengguna #%d", userID)
	owner, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := uc.users.Products(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateCatalog(owner, products)
	if err != nil {
		return nil, domain.Normalize(fmt.Errorf("generar PDF: %w", err), action)
	}
	return out, nil
}
