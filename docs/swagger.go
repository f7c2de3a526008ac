// Package docs Multimap Backend API.
//
// Бэкенд-прослойка между мобильным клиентом и Google Maps API.
// Принимает упрощённые запросы на текстовый поиск мест и расчёт маршрутов,
// переформатирует их в запросы к Google Places API и Google Routes API
// и возвращает клиенту подмножество полей ответа провайдера.
//
// Эндпоинты:
// - GET /health-check - проверка живости, без зависимостей
// - GET|POST /places - текстовый поиск мест (до 10 результатов)
// - POST /routes - варианты маршрута с учётом трафика
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
