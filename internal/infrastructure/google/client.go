package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/multimap-backend/internal/config"
	"github.com/multimap-backend/internal/domain"
	"go.uber.org/zap"
)

const (
	apiKeyHeader    = "X-Goog-Api-Key"
	fieldMaskHeader = "X-Goog-FieldMask"
	contentType     = "application/json"

	// Field mask ограничивает ответ провайдера нужными полями (и биллинг тоже).
	// При эволюции Google API меняется в одном месте.
	placesFieldMask = "places.id,places.displayName,places.formattedAddress,places.location"
	routesFieldMask = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline"

	maxResultCount = "10"

	// Фиксированные параметры расчёта маршрута
	travelMode        = "DRIVE"
	routingPreference = "TRAFFIC_AWARE_OPTIMAL"
	languageCode      = "en-US"
	units             = "METRIC"
)

// Client - клиент Google Places и Routes API. Реализует
// repository.PlacesRepository и repository.RoutesRepository.
type Client struct {
	httpClient *http.Client
	placesURL  string
	routesURL  string
	apiKey     string
	logger     *zap.Logger
}

// NewGoogleClient создает новый клиент для Google Places и Routes API
func NewGoogleClient(cfg *config.GoogleConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		placesURL: cfg.PlacesURL,
		routesURL: cfg.RoutesURL,
		apiKey:    cfg.APIKey,
		logger:    logger,
	}
}

type searchTextPayload struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount string `json:"maxResultCount"`
}

// SearchText выполняет текстовый поиск мест через Places API (searchText)
func (c *Client) SearchText(ctx context.Context, textQuery string) (*domain.PlaceList, error) {
	payload := searchTextPayload{
		TextQuery:      textQuery,
		MaxResultCount: maxResultCount,
	}

	var result domain.PlaceList
	if err := c.post(ctx, c.placesURL, placesFieldMask, payload, &result); err != nil {
		return nil, err
	}

	resultCount := 0
	if result.Places != nil {
		resultCount = len(*result.Places)
	}
	c.logger.Debug("Google Places search completed",
		zap.Int("result_count", resultCount))

	return &result, nil
}

// waypoint - вложенная структура origin/destination из контракта computeRoutes
type waypoint struct {
	Location struct {
		LatLng domain.Coordinate `json:"latLng"`
	} `json:"location"`
}

type routeModifiers struct {
	AvoidTolls    bool `json:"avoidTolls"`
	AvoidHighways bool `json:"avoidHighways"`
	AvoidFerries  bool `json:"avoidFerries"`
}

type computeRoutesPayload struct {
	Origin                   waypoint       `json:"origin"`
	Destination              waypoint       `json:"destination"`
	DepartureTime            string         `json:"departureTime"`
	TravelMode               string         `json:"travelMode"`
	RoutingPreference        string         `json:"routingPreference"`
	ComputeAlternativeRoutes bool           `json:"computeAlternativeRoutes"`
	RouteModifiers           routeModifiers `json:"routeModifiers"`
	LanguageCode             string         `json:"languageCode"`
	Units                    string         `json:"units"`
}

// ComputeRoutes запрашивает варианты маршрута через Routes API (computeRoutes).
// Режим фиксированный: DRIVE с учётом трафика, метрические единицы,
// альтернативные маршруты включены. DepartureTime уходит провайдеру как есть.
func (c *Client) ComputeRoutes(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	departureTime string,
) (*domain.RouteList, error) {
	payload := computeRoutesPayload{
		DepartureTime:            departureTime,
		TravelMode:               travelMode,
		RoutingPreference:        routingPreference,
		ComputeAlternativeRoutes: true,
		LanguageCode:             languageCode,
		Units:                    units,
	}
	payload.Origin.Location.LatLng = origin
	payload.Destination.Location.LatLng = destination

	var result domain.RouteList
	if err := c.post(ctx, c.routesURL, routesFieldMask, payload, &result); err != nil {
		return nil, err
	}

	c.logger.Debug("Google Routes computation completed",
		zap.Int("route_count", len(result.Routes)))

	return &result, nil
}

// post отправляет один POST к Google API и декодирует ответ.
// Ровно одна попытка: ретраев нет, ошибка сразу уходит наверх.
func (c *Client) post(ctx context.Context, url, fieldMask string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	c.logger.Debug("Calling Google API",
		zap.String("url", url),
		zap.String("field_mask", fieldMask))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set(fieldMaskHeader, fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("google API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Google API call successful",
		zap.String("url", url),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
