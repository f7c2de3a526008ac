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

// PlacesUseCase - use case для текстового поиска мест
type PlacesUseCase struct {
	placesRepo repository.PlacesRepository
	logger     *zap.Logger
}

// NewPlacesUseCase - создание нового PlacesUseCase
func NewPlacesUseCase(placesRepo repository.PlacesRepository, logger *zap.Logger) *PlacesUseCase {
	return &PlacesUseCase{
		placesRepo: placesRepo,
		logger:     logger,
	}
}

// Search - поиск мест по текстовому запросу. Невалидный запрос режется
// здесь, до единственного обращения к провайдеру. Ответ провайдера
// отдаётся без изменения формы: "places": null так и остаётся null.
func (uc *PlacesUseCase) Search(ctx context.Context, req dto.PlacesSearchRequest) (*domain.PlaceList, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidQuery
	}

	result, err := uc.placesRepo.SearchText(ctx, req.TextQuery)
	if err != nil {
		// Причина в лог, наружу только generic 500
		uc.logger.Error("Failed to search places", zap.Error(err))
		return nil, errors.ErrUpstream
	}

	return result, nil
}
