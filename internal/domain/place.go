package domain

// DisplayName - локализованное название места из Google Places API
type DisplayName struct {
	Text         string  `json:"text"`
	LanguageCode *string `json:"languageCode,omitempty"`
}

// Place - место из ответа Google Places API. Поля повторяют field mask
// places.id,places.displayName,places.formattedAddress,places.location,
// лишние поля провайдера отбрасываются при декодировании.
type Place struct {
	ID               string      `json:"id"`
	FormattedAddress string      `json:"formattedAddress"`
	PriceLevel       *string     `json:"priceLevel,omitempty"`
	DisplayName      DisplayName `json:"displayName"`
	Location         Coordinate  `json:"location"`
}

// PlaceList - список найденных мест. Places остаётся nil, если провайдер
// вернул "places": null (ноль результатов), и сериализуется обратно как null.
type PlaceList struct {
	Places *[]Place `json:"places"`
}
