package dto

// PlacesSearchRequest - запрос на текстовый поиск мест.
// "undefined" - сентинел незаполненного поля на клиенте, такой запрос
// отклоняется до обращения к провайдеру.
type PlacesSearchRequest struct {
	TextQuery string `json:"textQuery" validate:"required,excludes=undefined"`
}

// Location - координаты точки (одинарная точность, как у провайдера)
type Location struct {
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
}

// RouteRequest - запрос на расчёт маршрута. Точки обязательны и заданы
// указателями: (0,0) - легитимная координата, required на значении её бы
// отсекал. DepartureTime - ISO-8601 строка, локально не разбирается
// и уходит провайдеру как есть.
type RouteRequest struct {
	OriginLocation      *Location `json:"originLocation" validate:"required"`
	DestinationLocation *Location `json:"destinationLocation" validate:"required"`
	DepartureTime       string    `json:"departureTime" validate:"required"`
}
