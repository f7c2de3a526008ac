package repository

import (
	"context"

	"github.com/multimap-backend/internal/domain"
)

// PlacesRepository определяет методы для текстового поиска мест
// через Google Places API
type PlacesRepository interface {
	// SearchText выполняет текстовый поиск мест. Возвращает список с
	// Places == nil, если провайдер не нашёл ни одного места.
	SearchText(ctx context.Context, textQuery string) (*domain.PlaceList, error)
}

// RoutesRepository определяет методы для расчёта маршрутов
// через Google Routes API
type RoutesRepository interface {
	// ComputeRoutes возвращает варианты маршрута между двумя точками
	// в порядке провайдера, без ранжирования на нашей стороне
	ComputeRoutes(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
		departureTime string,
	) (*domain.RouteList, error)
}
