package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
)

const msgUserNotFound = "User tidak ditemukan"

// UserHandler maneja /users.
type UserHandler struct {
	store *devstore.Store
}

// NewUserHandler construye el handler.
func NewUserHandler(store *devstore.Store) *UserHandler {
	return &UserHandler{store: store}
}

// Profile GET /users/profile.
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	u, err := h.store.User(GetUserID(c))
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusOK, "", u)
}

// List GET /users (staff).
func (h *UserHandler) List(c *fiber.Ctx) error {
	return data(c, fiber.StatusOK, "", h.store.Users())
}

// GetByID GET /users/:id.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	u, err := h.store.User(id)
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusOK, "", u)
}

// Update PUT /users/:id. Una UMKM solo edita su propio perfil y no cambia su nivel.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if !IsStaff(c) && (id != GetUserID(c) || in.LevelID != nil) {
		return fail(c, fiber.StatusForbidden, "Akses ditolak")
	}
	u, err := h.store.UpdateUser(id, in)
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusOK, "User berhasil diperbarui", u)
}

// Delete DELETE /users/:id (staff).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.store.DeleteUser(id); err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return message(c, "User berhasil dihapus")
}

// Products GET /users/:id/products.
func (h *UserHandler) Products(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	ps, err := h.store.UserProducts(id)
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusOK, "", ps)
}

// Articles GET /users/:id/articles.
func (h *UserHandler) Articles(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	as, err := h.store.UserArticles(id)
	if err != nil {
		return storeError(c, err, msgUserNotFound)
	}
	return data(c, fiber.StatusOK, "", as)
}
