package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/pkg/jwt"
)

// Locals keys para UserID y Level en Fiber.
const (
	LocalUserID = "user_id"
	LocalLevel  = "level"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Level a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "Token tidak ditemukan"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "Format token: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "Token kosong"})
		}
		userID, level, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "Token tidak valid atau kedaluwarsa"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalLevel, level)
		return c.Next()
	}
}

// RequireLevel autoriza solo a los niveles indicados. Va después de AuthMiddleware.
func RequireLevel(levels ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := GetLevel(c)
		if level == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_LEVEL", Message: "Token tanpa level"})
		}
		for _, l := range levels {
			if l == level {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "FORBIDDEN", Message: "Akses ditolak untuk level " + level})
	}
}

// RequireStaff atajo para rutas de administración.
func RequireStaff() fiber.Handler {
	return RequireLevel(entity.LevelSuperadmin, entity.LevelAdmin)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetLevel devuelve el nivel del contexto (después del middleware de auth).
func GetLevel(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalLevel).(string)
	return v
}

// IsStaff indica si el usuario autenticado es admin o superadmin.
func IsStaff(c *fiber.Ctx) bool {
	l := GetLevel(c)
	return l == entity.LevelAdmin || l == entity.LevelSuperadmin
}
