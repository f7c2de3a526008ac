package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/multimap-backend/internal/domain"
	"github.com/multimap-backend/internal/domain/repository"
	"github.com/multimap-backend/internal/pkg/errors"
	"github.com/multimap-backend/internal/pkg/validator"
	"github.com/multimap-backend/internal/usecase/dto"
)

// RoutesUseCase - use case для расчёта маршрутов
type RoutesUseCase struct {
	routesRepo repository.RoutesRepository
	logger     *zap.Logger
}

// NewRoutesUseCase - создание нового RoutesUseCase
func NewRoutesUseCase(routesRepo repository.RoutesRepository, logger *zap.Logger) *RoutesUseCase {
	return &RoutesUseCase{
		routesRepo: routesRepo,
		logger:     logger,
	}
}

// ComputeRoutes - расчёт вариантов маршрута. Проверяется только наличие
// обеих точек и departureTime; значения координат структурно не
// валидируются (это забота провайдера). Варианты возвращаются
// в порядке провайдера.
func (uc *RoutesUseCase) ComputeRoutes(ctx context.Context, req dto.RouteRequest) (*domain.RouteList, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest
	}

	origin := domain.Coordinate{
		Latitude:  req.OriginLocation.Latitude,
		Longitude: req.OriginLocation.Longitude,
	}
	destination := domain.Coordinate{
		Latitude:  req.DestinationLocation.Latitude,
		Longitude: req.DestinationLocation.Longitude,
	}

	result, err := uc.routesRepo.ComputeRoutes(ctx, origin, destination, req.DepartureTime)
	if err != nil {
		uc.logger.Error("Failed to compute routes", zap.Error(err))
		return nil, errors.ErrUpstream
	}

	return result, nil
}
