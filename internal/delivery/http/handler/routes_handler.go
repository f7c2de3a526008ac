package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/multimap-backend/internal/pkg/errors"
	"github.com/multimap-backend/internal/pkg/utils"
	"github.com/multimap-backend/internal/usecase"
	"github.com/multimap-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// RoutesHandler - обработчик для расчёта маршрутов
type RoutesHandler struct {
	routesUC *usecase.RoutesUseCase
	logger   *zap.Logger
}

// NewRoutesHandler - создание нового RoutesHandler
func NewRoutesHandler(routesUC *usecase.RoutesUseCase, logger *zap.Logger) *RoutesHandler {
	return &RoutesHandler{
		routesUC: routesUC,
		logger:   logger,
	}
}

// ComputeRoutes godoc
// @Summary Расчёт маршрута между двумя точками
// @Description Проксирует запрос в Google Routes API (computeRoutes) с фиксированными настройками: автомобиль, учёт трафика, метрические единицы, альтернативные маршруты включены. Возвращает все варианты в порядке провайдера: расстояние, длительность и закодированную полилинию.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Откуда, куда и время выезда"
// @Success 200 {object} domain.RouteList
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /routes [post]
func (h *RoutesHandler) ComputeRoutes(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routesUC.ComputeRoutes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
