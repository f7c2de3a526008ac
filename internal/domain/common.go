package domain

// Coordinate - географическая точка. Google шлёт координаты одинарной
// точности, float32 достаточно.
type Coordinate struct {
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
}
