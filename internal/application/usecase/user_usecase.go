package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// UserUseCase operaciones sobre /users. El servidor decide los permisos; aquí solo viaja el token.
type UserUseCase struct {
	api ports.Requester
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(api ports.Requester) *UserUseCase {
	return &UserUseCase{api: api}
}

// Profile devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Profile(ctx context.Context) (*entity.User, error) {
	u, err := fetchData[entity.User](ctx, uc.api, get("users.profile", "/users/profile", nil), "mengambil profil")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List devuelve todos los usuarios (solo administradores).
func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return fetchData[[]entity.User](ctx, uc.api, get("users.list", "/users", nil), "mengambil daftar pengguna")
}

// GetByID devuelve un usuario.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := fetchData[entity.User](ctx, uc.api, get("users.get", pathID("/users", id), nil),
		fmt.Sprintf("mengambil pengguna #%d", id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update actualiza parcialmente un usuario.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	u, err := fetchData[entity.User](ctx, uc.api, put("users.update", pathID("/users", id), in),
		fmt.Sprintf("memperbarui pengguna #%d", id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete elimina un usuario (operación de administrador).
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api, del("users.delete", pathID("/users", id)),
		fmt.Sprintf("menghapus pengguna #%d", id))
}

// Products lista los productos de un usuario.
func (uc *UserUseCase) Products(ctx context.Context, id int64) ([]entity.Product, error) {
	return fetchData[[]entity.Product](ctx, uc.api, get("users.products", pathID("/users", id)+"/products", nil),
		fmt.Sprintf("mengambil produk pengguna #%d", id))
}

// Articles lista los artículos de un usuario.
func (uc *UserUseCase) Articles(ctx context.Context, id int64) ([]entity.Article, error) {
	return fetchData[[]entity.Article](ctx, uc.api, get("users.articles", pathID("/users", id)+"/articles", nil),
		fmt.Sprintf("mengambil artikel pengguna #%d", id))
}
