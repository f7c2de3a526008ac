package domain

// Polyline - закодированная полилиния маршрута. Формат кодирования
// провайдерский, здесь не декодируется.
type Polyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

// Route - вариант маршрута из Google Routes API. Duration передаётся
// строкой в формате провайдера (например "165s"), без разбора.
type Route struct {
	DistanceMeters float32  `json:"distanceMeters"`
	Duration       string   `json:"duration"`
	Polyline       Polyline `json:"polyline"`
}

// RouteList - варианты маршрута в порядке, в котором их вернул провайдер
type RouteList struct {
	Routes []Route `json:"routes"`
}
