package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/usecase"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
)

const msgProductNotFound = "Produk tidak ditemukan"

// ProductHandler maneja /products y sus links de tienda online.
type ProductHandler struct {
	store *devstore.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *devstore.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List GET /products?page&limit&q&kategori&subsector (público).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f dto.ProductFilter
	if err := c.QueryParser(&f); err != nil {
		return fail(c, fiber.StatusBadRequest, "Parameter tidak valid")
	}
	return c.JSON(h.store.Products(f))
}

// Statuses GET /products/statuses (público).
func (h *ProductHandler) Statuses(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.ProductStatuses())
}

// GetByID GET /products/:id (público).
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	p, err := h.store.Product(id)
	if err != nil {
		return storeError(c, err, msgProductNotFound)
	}
	return data(c, fiber.StatusOK, "", p)
}

// Create POST /products. La imagen debe ser una URL ya subida.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(in.Name) == "" {
		return fail(c, fiber.StatusBadRequest, "Nama produk wajib diisi")
	}
	if err := usecase.ValidateImageURL(in.Image); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return fail(c, fiber.StatusBadRequest, "Harga dan stok tidak boleh negatif")
	}
	p, err := h.store.CreateProduct(GetUserID(c), in)
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusCreated, "Produk berhasil dibuat", p)
}

// Update PUT /products/:id (dueño o staff). Solo staff cambia el estado.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := h.authorize(c)
	if !ok {
		return nil
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if in.Image != nil {
		if err := usecase.ValidateImageURL(*in.Image); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if in.Status != nil && (!IsStaff(c) || !in.Status.IsKnown()) {
		return fail(c, fiber.StatusForbidden, "Status produk tidak dapat diubah")
	}
	p, err := h.store.UpdateProduct(id, in)
	if err != nil {
		return storeError(c, err, msgProductNotFound)
	}
	return data(c, fiber.StatusOK, "Produk berhasil diperbarui", p)
}

// Delete DELETE /products/:id (dueño o staff).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := h.authorize(c)
	if !ok {
		return nil
	}
	if err := h.store.DeleteProduct(id); err != nil {
		return storeError(c, err, msgProductNotFound)
	}
	return message(c, "Produk berhasil dihapus")
}

// CreateLink POST /products/:id/links.
func (h *ProductHandler) CreateLink(c *fiber.Ctx) error {
	id, ok := h.authorize(c)
	if !ok {
		return nil
	}
	var in dto.OnlineStoreLinkRequest
	if err := c.BodyParser(&in); err != nil || in.PlatformName == "" || in.URL == "" {
		return fail(c, fiber.StatusBadRequest, "Nama platform dan URL wajib diisi")
	}
	l, err := h.store.AddLink(id, in)
	if err != nil {
		return storeError(c, err, msgProductNotFound)
	}
	return data(c, fiber.StatusCreated, "Link berhasil ditambahkan", l)
}

// UpdateLink PUT /products/:id/links/:linkId.
func (h *ProductHandler) UpdateLink(c *fiber.Ctx) error {
	id, ok := h.authorize(c)
	if !ok {
		return nil
	}
	linkID, ok := paramID(c, "linkId")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID link tidak valid")
	}
	var in dto.UpdateOnlineStoreLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	l, err := h.store.UpdateLink(id, linkID, in)
	if err != nil {
		return storeError(c, err, "Link tidak ditemukan")
	}
	return data(c, fiber.StatusOK, "Link berhasil diperbarui", l)
}

// authorize lee :id y exige que el usuario sea dueño del producto o staff.
// Si devuelve false la respuesta de error ya fue escrita.
func (h *ProductHandler) authorize(c *fiber.Ctx) (int64, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		_ = fail(c, fiber.StatusBadRequest, "ID tidak valid")
		return 0, false
	}
	p, err := h.store.Product(id)
	if err != nil {
		_ = storeError(c, err, msgProductNotFound)
		return 0, false
	}
	if p.UserID != GetUserID(c) && !IsStaff(c) {
		_ = fail(c, fiber.StatusForbidden, "Akses ditolak")
		return 0, false
	}
	return id, true
}
