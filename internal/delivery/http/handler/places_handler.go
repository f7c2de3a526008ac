package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/multimap-backend/internal/pkg/errors"
	"github.com/multimap-backend/internal/pkg/utils"
	"github.com/multimap-backend/internal/usecase"
	"github.com/multimap-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlacesHandler - обработчик для поиска мест
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

// NewPlacesHandler - создание нового PlacesHandler
func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Текстовый поиск мест
// @Description Проксирует текстовый запрос в Google Places API (searchText) и возвращает подмножество полей ответа: id, displayName, formattedAddress, priceLevel, location. Запрашивается не более 10 результатов. При нуле результатов поле places равно null.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.PlacesSearchRequest true "Текстовый запрос"
// @Success 200 {object} domain.PlaceList
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /places [post]
func (h *PlacesHandler) Search(c *fiber.Ctx) error {
	var req dto.PlacesSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placesUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// SearchGET godoc
// @Summary Текстовый поиск мест (query-параметр)
// @Description То же, что POST /places, но запрос передаётся query-параметром. Оставлено для старых клиентов.
// @Tags Places
// @Produce json
// @Param textQuery query string true "Текстовый запрос"
// @Success 200 {object} domain.PlaceList
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /places [get]
func (h *PlacesHandler) SearchGET(c *fiber.Ctx) error {
	req := dto.PlacesSearchRequest{
		TextQuery: c.Query("textQuery"),
	}

	result, err := h.placesUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
