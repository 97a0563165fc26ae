package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
	"github.com/jhoicas/ekraf-client/pkg/config"
	"github.com/jhoicas/ekraf-client/pkg/jwt"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// AuthHandler login por nivel, registro UMKM y flujo de contraseña (público).
type AuthHandler struct {
	store *devstore.Store
	jwt   config.JWTConfig
	log   *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(store *devstore.Store, jwtCfg config.JWTConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{store: store, jwt: jwtCfg, log: log}
}

// Login POST /auth/login/:level.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	level := c.Params("level")
	if !entity.ValidLevel(level) {
		return fail(c, fiber.StatusBadRequest, "Level tidak valid")
	}
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(in.UsernameOrEmail) == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username/email dan password wajib diisi")
	}
	user, err := h.store.Authenticate(level, in.UsernameOrEmail, in.Password)
	if err != nil {
		if errors.Is(err, devstore.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Username/email atau password salah")
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	token, err := jwt.Generate(h.jwt.Secret, user.ID, level, h.jwt.Issuer, h.jwt.Expiration)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	h.log.Info().Int64("user_id", user.ID).Str("level", level).Msg("login")
	return c.JSON(dto.LoginResponse{Message: "Login berhasil", Token: token, User: user})
}

// Register POST /auth/register/umkm. El usuario queda sin verificar.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUMKMRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Data registrasi tidak lengkap")
	}
	token, err := h.store.RegisterUMKM(in)
	if err != nil {
		if errors.Is(err, devstore.ErrDuplicate) {
			return fail(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	// Sin servicio de correo: el token de verificación solo aparece en el log.
	h.log.Info().Str("username", in.Username).Str("verify_token", token).Msg("registro UMKM")
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "Registrasi berhasil. Silakan verifikasi email Anda.", Success: true,
	})
}

// ForgotPassword POST /auth/forgot-password. Responde igual exista o no el email.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil || in.Email == "" {
		return fail(c, fiber.StatusBadRequest, "Email wajib diisi")
	}
	if token := h.store.ForgotPassword(in.Email); token != "" {
		h.log.Info().Str("email", in.Email).Str("reset_token", token).Msg("reset de contraseña solicitado")
	}
	return message(c, "Jika email terdaftar, tautan reset password telah dikirim")
}

// ResetPassword POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil || in.Token == "" || in.NewPassword == "" {
		return fail(c, fiber.StatusBadRequest, "Token dan password baru wajib diisi")
	}
	if err := h.store.ResetPassword(in.Token, in.NewPassword); err != nil {
		return storeError(c, err, "")
	}
	return message(c, "Password berhasil direset")
}

// VerifyEmail POST /auth/verify-email.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var in dto.VerifyEmailRequest
	if err := c.BodyParser(&in); err != nil || in.Token == "" {
		return fail(c, fiber.StatusBadRequest, "Token wajib diisi")
	}
	if err := h.store.VerifyEmail(in.Token); err != nil {
		return storeError(c, err, "")
	}
	return message(c, "Email berhasil diverifikasi")
}
