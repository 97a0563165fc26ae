package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// ── Categorías de negocio ───────────────────────────────────────────────────

// BusinessCategoryUseCase administración de /business-categories.
type BusinessCategoryUseCase struct {
	api ports.Requester
}

// NewBusinessCategoryUseCase construye el caso de uso.
func NewBusinessCategoryUseCase(api ports.Requester) *BusinessCategoryUseCase {
	return &BusinessCategoryUseCase{api: api}
}

func (uc *BusinessCategoryUseCase) List(ctx context.Context) ([]entity.BusinessCategory, error) {
	return fetchData[[]entity.BusinessCategory](ctx, uc.api,
		get("business_categories.list", "/business-categories", nil), "mengambil kategori usaha")
}

func (uc *BusinessCategoryUseCase) GetByID(ctx context.Context, id int64) (*entity.BusinessCategory, error) {
	c, err := fetchData[entity.BusinessCategory](ctx, uc.api,
		get("business_categories.get", pathID("/business-categories", id), nil),
		fmt.Sprintf("mengambil kategori usaha #%d", id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *BusinessCategoryUseCase) Create(ctx context.Context, in dto.BusinessCategoryRequest) (*entity.BusinessCategory, error) {
	c, err := fetchData[entity.BusinessCategory](ctx, uc.api,
		post("business_categories.create", "/business-categories", in), "membuat kategori usaha")
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *BusinessCategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateBusinessCategoryRequest) (*entity.BusinessCategory, error) {
	c, err := fetchData[entity.BusinessCategory](ctx, uc.api,
		put("business_categories.update", pathID("/business-categories", id), in),
		fmt.Sprintf("memperbarui kategori usaha #%d", id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *BusinessCategoryUseCase) Delete(ctx context.Context, id int64) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api, del("business_categories.delete", pathID("/business-categories", id)),
		fmt.Sprintf("menghapus kategori usaha #%d", id))
}

// ── Subsectores ─────────────────────────────────────────────────────────────

// SubsectorUseCase administración de /subsectors.
type SubsectorUseCase struct {
	api ports.Requester
}

// NewSubsectorUseCase construye el caso de uso.
func NewSubsectorUseCase(api ports.Requester) *SubsectorUseCase {
	return &SubsectorUseCase{api: api}
}

func (uc *SubsectorUseCase) List(ctx context.Context) ([]entity.SubSector, error) {
	return fetchData[[]entity.SubSector](ctx, uc.api, get("subsectors.list", "/subsectors", nil), "mengambil subsektor")
}

func (uc *SubsectorUseCase) GetByID(ctx context.Context, id int64) (*entity.SubSector, error) {
	s, err := fetchData[entity.SubSector](ctx, uc.api, get("subsectors.get", pathID("/subsectors", id), nil),
		fmt.Sprintf("mengambil subsektor #%d", id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *SubsectorUseCase) Create(ctx context.Context, title string) (*entity.SubSector, error) {
	s, err := fetchData[entity.SubSector](ctx, uc.api,
		post("subsectors.create", "/subsectors", dto.SubsectorRequest{Title: title}), "membuat subsektor")
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *SubsectorUseCase) Update(ctx context.Context, id int64, title string) (*entity.SubSector, error) {
	s, err := fetchData[entity.SubSector](ctx, uc.api,
		put("subsectors.update", pathID("/subsectors", id), dto.SubsectorRequest{Title: title}),
		fmt.Sprintf("memperbarui subsektor #%d", id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *SubsectorUseCase) Delete(ctx context.Context, id int64) (*dto.Message, error) {
	return fetchMessage(ctx, uc.api, del("subsectors.delete", pathID("/subsectors", id)),
		fmt.Sprintf("menghapus subsektor #%d", id))
}
