package usecase

import (
	"context"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// StatisticsUseCase contadores del tablero, calculados por el servidor.
type StatisticsUseCase struct {
	api ports.Requester
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(api ports.Requester) *StatisticsUseCase {
	return &StatisticsUseCase{api: api}
}

// Get devuelve las estadísticas (requiere sesión).
func (uc *StatisticsUseCase) Get(ctx context.Context) (*entity.Statistics, error) {
	s, err := fetchData[entity.Statistics](ctx, uc.api, get("statistics.get", "/statistics", nil), "mengambil statistik")
	if err != nil {
		return nil, err
	}
	return &s, nil
}
