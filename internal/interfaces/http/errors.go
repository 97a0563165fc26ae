package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
)

// fail responde {message} con el status dado.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Message: message})
}

// storeError traduce los errores del almacén a status HTTP.
func storeError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, devstore.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, devstore.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "Data sudah terdaftar")
	case errors.Is(err, devstore.ErrInvalidToken):
		return fail(c, fiber.StatusBadRequest, "Token tidak valid atau kedaluwarsa")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// paramID lee un parámetro numérico de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func data(c *fiber.Ctx, status int, message string, v any) error {
	return c.Status(status).JSON(dto.Envelope[any]{Message: message, Data: v})
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(dto.Message{Message: msg})
}
