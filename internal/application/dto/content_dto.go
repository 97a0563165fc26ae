package dto

import "github.com/jhoicas/ekraf-client/internal/domain/entity"

// CreateArticleRequest entrada de POST /articles.
type CreateArticleRequest struct {
	ArticleCategoryID string `json:"artikel_kategori_id"`
	Title             string `json:"title"`
	Thumbnail         string `json:"thumbnail"`
	Content           string `json:"content"`
	IsFeatured        bool   `json:"is_featured"`
}

// UpdateArticleRequest actualización parcial de un artículo.
type UpdateArticleRequest struct {
	ArticleCategoryID *string `json:"artikel_kategori_id,omitempty"`
	Title             *string `json:"title,omitempty"`
	Thumbnail         *string `json:"thumbnail,omitempty"`
	Content           *string `json:"content,omitempty"`
	IsFeatured        *bool   `json:"is_featured,omitempty"`
}

// BusinessCategoryRequest alta de una categoría de negocio.
type BusinessCategoryRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	SubSectorID int64  `json:"sub_sector_id"`
	Description string `json:"description,omitempty"`
}

// UpdateBusinessCategoryRequest actualización parcial de una categoría.
type UpdateBusinessCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Image       *string `json:"image,omitempty"`
	SubSectorID *int64  `json:"sub_sector_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SubsectorRequest alta/edición de un subsector.
type SubsectorRequest struct {
	Title string `json:"title"`
}

// MasterData agrupa las tres taxonomías que se piden juntas al iniciar la app.
type MasterData struct {
	BusinessCategories []entity.BusinessCategory `json:"business_categories"`
	Levels             []entity.Level            `json:"levels"`
	SubSectors         []entity.SubSector        `json:"sub_sectors"`
}

// UploadResponse respuesta del host de imágenes.
type UploadResponse struct {
	URL string `json:"url"`
}
