package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// ArticleUseCase contenido editorial: listado público y CRUD autenticado.
type ArticleUseCase struct {
	api ports.Requester
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(api ports.Requester) *ArticleUseCase {
	return &ArticleUseCase{api: api}
}

// List devuelve una página de artículos; Page/Limit en cero no se envían.
func (uc *ArticleUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.Page[entity.Article], error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	var page dto.Page[entity.Article]
	if err := call(ctx, uc.api, get("articles.list", "/articles", q), &page, "mengambil daftar artikel"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID devuelve un artículo.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := fetchData[entity.Article](ctx, uc.api, get("articles.get", pathID("/articles", id), nil),
		fmt.Sprintf("mengambil artikel #%d", id))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create publica un artículo.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*entity.Article, error) {
	a, err := fetchData[entity.Article](ctx, uc.api, post("articles.create", "/articles", in), "membuat artikel")
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update modifica parcialmente un artículo.
func (uc *ArticleUseCase) Update(ctx context.Context, id int64, in dto.UpdateArticleRequest) (*entity.Article, error) {
	a, err := fetchData[entity.Article](ctx, uc.api, put("articles.update", pathID("/articles", id), in),
		fmt.Sprintf("memperbarui artikel #%d", id))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete elimina un artículo.
func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api, del("articles.delete", pathID("/articles", id)),
		fmt.Sprintf("menghapus artikel #%d", id))
}
