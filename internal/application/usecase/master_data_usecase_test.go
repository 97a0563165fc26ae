package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ekraf-client/internal/application/usecase"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

func masterDataAPI() *fakeAPI {
	api := newFakeAPI()
	api.on(http.MethodGet, "/master-data/business-categories", `{"data":[{"id":1,"name":"Kuliner"},{"id":2,"name":"Fashion"}]}`)
	api.on(http.MethodGet, "/master-data/levels", `{"data":[{"id":1,"name":"superadmin"},{"id":2,"name":"admin"},{"id":3,"name":"umkm"}]}`)
	api.on(http.MethodGet, "/master-data/subsectors", `{"data":[{"id":1,"title":"Kriya"}]}`)
	return api
}

func TestMasterData_GetAll(t *testing.T) {
	api := masterDataAPI()

	res, err := usecase.NewMasterDataUseCase(api, nil).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgMasterDataOK, res.Message)
	assert.Len(t, res.Data.BusinessCategories, 2)
	assert.Len(t, res.Data.Levels, 3)
	assert.Len(t, res.Data.SubSectors, 1)
	assert.Len(t, api.calls(), 3)
}

func TestMasterData_GetAll_UnFalloRechazaTodo(t *testing.T) {
	for _, broken := range []string{"/master-data/business-categories", "/master-data/levels", "/master-data/subsectors"} {
		t.Run(broken, func(t *testing.T) {
			api := masterDataAPI()
			api.fail(http.MethodGet, broken, domain.Rejected(500, "Database error"))

			res, err := usecase.NewMasterDataUseCase(api, nil).GetAll(context.Background())
			assert.Nil(t, res, "nunca hay resultado parcial")
			assert.EqualError(t, err, "Database error")
			assert.ErrorIs(t, err, domain.ErrRejected)
		})
	}
}

func TestMasterData_GetAll_EsConcurrente(t *testing.T) {
	var inFlight, peak int32
	release := make(chan struct{})
	w := newWire(t, func(rw http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		if n == 3 {
			close(release)
		}
		<-release
		atomic.AddInt32(&inFlight, -1)
		_, _ = rw.Write([]byte(`{"data":[]}`))
	})

	_, err := usecase.NewMasterDataUseCase(w.api, nil).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&peak), "las tres peticiones están en vuelo a la vez")
}

func TestMasterData_UserLevelsEsAliasDeLevels(t *testing.T) {
	api := masterDataAPI()
	got, err := usecase.NewMasterDataUseCase(api, nil).UserLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "umkm", got[2].Name)
	assert.Equal(t, "/master-data/levels", api.calls()[0].Path)
}

func TestMasterData_ProductStatuses_EndpointDedicado(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodGet, "/products/statuses", `{"data":["pending","Disetujui","tidak aktif"]}`)

	got := usecase.NewMasterDataUseCase(api, nil).ProductStatuses(context.Background())
	assert.Equal(t, []entity.ProductStatus{"pending", "disetujui", "tidak_aktif"}, got)
}

func TestMasterData_ProductStatuses_DesdeProductos(t *testing.T) {
	api := newFakeAPI()
	api.fail(http.MethodGet, "/products/statuses", domain.Rejected(404, "Not Found"))
	api.on(http.MethodGet, "/products", `{"data":[{"status":"ditolak"},{"status":"pending"},{"status_produk":"ditolak"},{}]}`)

	got := usecase.NewMasterDataUseCase(api, nil).ProductStatuses(context.Background())
	assert.Equal(t, []entity.ProductStatus{"ditolak", "pending"}, got)
	assert.Equal(t, "100", api.calls()[1].Query.Get("limit"))
}

func TestMasterData_ProductStatuses_Canonicos(t *testing.T) {
	api := newFakeAPI()
	api.fail(http.MethodGet, "/products/statuses", domain.Unreachable(nil))
	api.fail(http.MethodGet, "/products", domain.Unreachable(nil))

	got := usecase.NewMasterDataUseCase(api, nil).ProductStatuses(context.Background())
	assert.Equal(t, entity.ProductStatuses(), got)
}

func TestMasterData_SinCache(t *testing.T) {
	var hits int32
	w := newWire(t, func(rw http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/subsectors") {
			atomic.AddInt32(&hits, 1)
		}
		_, _ = rw.Write([]byte(`{"data":[]}`))
	})
	uc := usecase.NewMasterDataUseCase(w.api, nil)
	_, _ = uc.Subsectors(context.Background())
	_, _ = uc.Subsectors(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
