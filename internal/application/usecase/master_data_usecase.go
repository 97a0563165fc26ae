package usecase

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// MsgMasterDataOK mensaje del resultado combinado de GetAll.
const MsgMasterDataOK = "Master data retrieved successfully"

// MasterDataUseCase taxonomías de solo lectura (públicas, sin caché: cada llamada va a la red).
type MasterDataUseCase struct {
	api ports.Requester
	log *logger.Logger
}

// NewMasterDataUseCase construye el caso de uso. log puede ser nil.
func NewMasterDataUseCase(api ports.Requester, log *logger.Logger) *MasterDataUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MasterDataUseCase{api: api, log: log.Named("master_data")}
}

func (uc *MasterDataUseCase) BusinessCategories(ctx context.Context) ([]entity.BusinessCategory, error) {
	return fetchData[[]entity.BusinessCategory](ctx, uc.api,
		get("master_data.business_categories", "/master-data/business-categories", nil), "mengambil kategori usaha")
}

func (uc *MasterDataUseCase) Levels(ctx context.Context) ([]entity.Level, error) {
	return fetchData[[]entity.Level](ctx, uc.api,
		get("master_data.levels", "/master-data/levels", nil), "mengambil level pengguna")
}

// UserLevels nombre anterior de Levels.
func (uc *MasterDataUseCase) UserLevels(ctx context.Context) ([]entity.Level, error) {
	return uc.Levels(ctx)
}

func (uc *MasterDataUseCase) Subsectors(ctx context.Context) ([]entity.SubSector, error) {
	return fetchData[[]entity.SubSector](ctx, uc.api,
		get("master_data.subsectors", "/master-data/subsectors", nil), "mengambil subsektor")
}

// GetAll pide las tres taxonomías en paralelo. Si una falla, se cancelan las demás y GetAll
// falla con ese error: nunca devuelve un resultado parcial.
func (uc *MasterDataUseCase) GetAll(ctx context.Context) (*dto.Envelope[dto.MasterData], error) {
	var md dto.MasterData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		md.BusinessCategories, err = uc.BusinessCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		md.Levels, err = uc.Levels(gctx)
		return err
	})
	g.Go(func() (err error) {
		md.SubSectors, err = uc.Subsectors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Normalize(err, "mengambil master data")
	}
	return &dto.Envelope[dto.MasterData]{Message: MsgMasterDataOK, Data: md}, nil
}

// ProductStatuses descubre los estados de producto en uso. Prueba /products/statuses, luego
// los estados distintos de los primeros 100 productos y, como último recurso, la enumeración
// canónica. Nunca falla.
func (uc *MasterDataUseCase) ProductStatuses(ctx context.Context) []entity.ProductStatus {
	var env dto.Envelope[[]string]
	if err := uc.api.Do(ctx, get("products.statuses", "/products/statuses", nil), &env); err == nil && len(env.Data) > 0 {
		out := make([]entity.ProductStatus, 0, len(env.Data))
		for _, s := range env.Data {
			out = appendStatus(out, entity.NormalizeProductStatus(s))
		}
		return out
	}

	var page dto.Page[entity.Product]
	if err := uc.api.Do(ctx, get("products.list", "/products", url.Values{"limit": {"100"}}), &page); err == nil {
		var out []entity.ProductStatus
		for _, p := range page.Data {
			out = appendStatus(out, p.Status)
		}
		if len(out) > 0 {
			return out
		}
	}

	uc.log.Warn().Msg("API de estados de producto no disponible, usando la enumeración canónica")
	return entity.ProductStatuses()
}

// appendStatus agrega s si no está vacío ni repetido (conserva el orden de aparición).
func appendStatus(list []entity.ProductStatus, s entity.ProductStatus) []entity.ProductStatus {
	if s == "" {
		return list
	}
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
