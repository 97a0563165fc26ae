package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/application/session"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// AuthUseCase login por nivel, registro UMKM y flujo de recuperación de contraseña.
type AuthUseCase struct {
	api     ports.Requester
	session *session.Manager
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(api ports.Requester, sess *session.Manager) *AuthUseCase {
	return &AuthUseCase{api: api, session: sess}
}

// Login autentica contra /auth/login/{level} y persiste token + usuario en la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, level string, in dto.LoginRequest) (*entity.Session, error) {
	const action = "melakukan login"
	if !entity.ValidLevel(level) {
		return nil, domain.Normalize(domain.Validation(fmt.Sprintf("Level login tidak valid: %q", level)), action)
	}

	var resp dto.LoginResponse
	if err := call(ctx, uc.api, post("auth.login", "/auth/login/"+level, in), &resp, action); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, domain.Normalize(domain.Malformed("", fmt.Errorf("login sin token")), action)
	}

	s := entity.Session{Token: resp.Token, User: resp.User}
	if err := uc.session.Save(ctx, s); err != nil {
		return nil, domain.Normalize(err, action)
	}
	return &s, nil
}

// RegisterUMKM registra una nueva UMKM. No crea sesión: el usuario debe verificar su email primero.
func (uc *AuthUseCase) RegisterUMKM(ctx context.Context, in dto.RegisterUMKMRequest) (*dto.RegisterResponse, error) {
	var resp dto.RegisterResponse
	if err := call(ctx, uc.api, post("auth.register", "/auth/register/umkm", in), &resp, "melakukan registrasi"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword solicita el correo de restablecimiento.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api,
		post("auth.forgot_password", "/auth/forgot-password", dto.ForgotPasswordRequest{Email: email}),
		"meminta reset password")
}

// ResetPassword fija una nueva contraseña con el token recibido por correo.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api,
		post("auth.reset_password", "/auth/reset-password", dto.ResetPasswordRequest{Token: token, NewPassword: newPassword}),
		"mereset password")
}

// VerifyEmail confirma la dirección de correo.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, token string) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api,
		post("auth.verify_email", "/auth/verify-email", dto.VerifyEmailRequest{Token: token}),
		"memverifikasi email")
}

// Logout borra la sesión local; no hay llamada de red.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return domain.Normalize(uc.session.Clear(ctx), "melakukan logout")
}
