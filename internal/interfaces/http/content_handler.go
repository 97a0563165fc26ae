package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
)

// ArticleHandler maneja /articles (lectura pública, escritura staff).
type ArticleHandler struct {
	store *devstore.Store
}

func NewArticleHandler(store *devstore.Store) *ArticleHandler {
	return &ArticleHandler{store: store}
}

func (h *ArticleHandler) List(c *fiber.Ctx) error {
	var pr dto.PageRequest
	if err := c.QueryParser(&pr); err != nil {
		return fail(c, fiber.StatusBadRequest, "Parameter tidak valid")
	}
	return c.JSON(h.store.Articles(pr))
}

func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	a, err := h.store.Article(id)
	if err != nil {
		return storeError(c, err, "Artikel tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "", a)
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return fail(c, fiber.StatusBadRequest, "Judul dan konten wajib diisi")
	}
	return data(c, fiber.StatusCreated, "Artikel berhasil dibuat", h.store.CreateArticle(GetUserID(c), in))
}

func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	a, err := h.store.UpdateArticle(id, in)
	if err != nil {
		return storeError(c, err, "Artikel tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "Artikel berhasil diperbarui", a)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.store.DeleteArticle(id); err != nil {
		return storeError(c, err, "Artikel tidak ditemukan")
	}
	return message(c, "Artikel berhasil dihapus")
}

// ── Taxonomías ────────────────────────────────────────────────────────────────

// TaxonomyHandler maneja /business-categories, /subsectors y /master-data.
type TaxonomyHandler struct {
	store *devstore.Store
}

func NewTaxonomyHandler(store *devstore.Store) *TaxonomyHandler {
	return &TaxonomyHandler{store: store}
}

func (h *TaxonomyHandler) Levels(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.Levels())
}

func (h *TaxonomyHandler) Categories(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.Categories())
}

func (h *TaxonomyHandler) Category(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	cat, err := h.store.Category(id)
	if err != nil {
		return storeError(c, err, "Kategori usaha tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "", cat)
}

func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.BusinessCategoryRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		return fail(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}
	cat, err := h.store.CreateCategory(in)
	if err != nil {
		return storeError(c, err, "")
	}
	return data(c, fiber.StatusCreated, "Kategori usaha berhasil dibuat", cat)
}

func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var in dto.UpdateBusinessCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	cat, err := h.store.UpdateCategory(id, in)
	if err != nil {
		return storeError(c, err, "Kategori usaha tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "Kategori usaha berhasil diperbarui", cat)
}

func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.store.DeleteCategory(id); err != nil {
		return storeError(c, err, "Kategori usaha tidak ditemukan")
	}
	return message(c, "Kategori usaha berhasil dihapus")
}

func (h *TaxonomyHandler) Subsectors(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.Subsectors())
}

func (h *TaxonomyHandler) Subsector(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	ss, err := h.store.Subsector(id)
	if err != nil {
		return storeError(c, err, "Subsektor tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "", ss)
}

func (h *TaxonomyHandler) CreateSubsector(c *fiber.Ctx) error {
	var in dto.SubsectorRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Title) == "" {
		return fail(c, fiber.StatusBadRequest, "Judul subsektor wajib diisi")
	}
	ss, err := h.store.CreateSubsector(in.Title)
	if err != nil {
		return storeError(c, err, "")
	}
	return data(c, fiber.StatusCreated, "Subsektor berhasil dibuat", ss)
}

func (h *TaxonomyHandler) UpdateSubsector(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var in dto.SubsectorRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Title) == "" {
		return fail(c, fiber.StatusBadRequest, "Judul subsektor wajib diisi")
	}
	ss, err := h.store.UpdateSubsector(id, in.Title)
	if err != nil {
		return storeError(c, err, "Subsektor tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "Subsektor berhasil diperbarui", ss)
}

func (h *TaxonomyHandler) DeleteSubsector(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.store.DeleteSubsector(id); err != nil {
		return storeError(c, err, "Subsektor tidak ditemukan")
	}
	return message(c, "Subsektor berhasil dihapus")
}

// Statistics GET /statistics (staff).
func (h *TaxonomyHandler) Statistics(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.Statistics())
}
