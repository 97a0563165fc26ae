package dto

import "github.com/jhoicas/ekraf-client/internal/domain/entity"

// LoginRequest credenciales para /auth/login/{level}.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// LoginResponse salida del login: token bearer + usuario autenticado.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

// RegisterUMKMRequest entrada de /auth/register/umkm.
type RegisterUMKMRequest struct {
	Name               string `json:"name"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Gender             string `json:"gender"`
	PhoneNumber        string `json:"phone_number"`
	BusinessName       string `json:"business_name"`
	BusinessStatus     string `json:"business_status"`
	BusinessCategoryID int64  `json:"business_category_id"`
}

// RegisterResponse salida del registro (la sesión se crea tras verificar el email).
type RegisterResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ForgotPasswordRequest entrada de /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest entrada de /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// VerifyEmailRequest entrada de /auth/verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// UpdateUserRequest actualización parcial de un usuario; nil = no se envía.
type UpdateUserRequest struct {
	Name               *string `json:"name,omitempty"`
	Username           *string `json:"username,omitempty"`
	Email              *string `json:"email,omitempty"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	BusinessName       *string `json:"business_name,omitempty"`
	BusinessStatus     *string `json:"business_status,omitempty"`
	BusinessCategoryID *int64  `json:"business_category_id,omitempty"`
	LevelID            *int64  `json:"level_id,omitempty"`
}
