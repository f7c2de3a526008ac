package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/multimap-backend/internal/config"
	"github.com/multimap-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(url string) *config.GoogleConfig {
	return &config.GoogleConfig{
		APIKey:         "test_key",
		PlacesURL:      url,
		RoutesURL:      url,
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_SearchText(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		lang := "en"
		price := "PRICE_LEVEL_MODERATE"
		mockResp := domain.PlaceList{
			Places: &[]domain.Place{
				{
					ID:               "ChIJ1",
					FormattedAddress: "123 George St, Sydney NSW",
					PriceLevel:       &price,
					DisplayName:      domain.DisplayName{Text: "Spicy Veggie", LanguageCode: &lang},
					Location:         domain.Coordinate{Latitude: -33.8688, Longitude: 151.2093},
				},
				{
					ID:               "ChIJ2",
					FormattedAddress: "456 Pitt St, Sydney NSW",
					DisplayName:      domain.DisplayName{Text: "Green Bowl"},
					Location:         domain.Coordinate{Latitude: -33.87, Longitude: 151.21},
				},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test_key", r.Header.Get("X-Goog-Api-Key"))
			assert.Equal(t, placesFieldMask, r.Header.Get("X-Goog-FieldMask"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Spicy Vegetarian Food in Sydney", body["textQuery"])
			assert.Equal(t, "10", body["maxResultCount"])

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResp)
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "Spicy Vegetarian Food in Sydney")
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Places)
		require.Len(t, *result.Places, 2)

		first := (*result.Places)[0]
		assert.Equal(t, "ChIJ1", first.ID)
		assert.Equal(t, "123 George St, Sydney NSW", first.FormattedAddress)
		require.NotNil(t, first.PriceLevel)
		assert.Equal(t, "PRICE_LEVEL_MODERATE", *first.PriceLevel)
		assert.Equal(t, "Spicy Veggie", first.DisplayName.Text)
		require.NotNil(t, first.DisplayName.LanguageCode)
		assert.Equal(t, "en", *first.DisplayName.LanguageCode)
		assert.InDelta(t, -33.8688, float64(first.Location.Latitude), 0.0001)
		assert.InDelta(t, 151.2093, float64(first.Location.Longitude), 0.0001)

		// У второго места нет priceLevel и languageCode - остаются nil, не дефолтятся
		second := (*result.Places)[1]
		assert.Nil(t, second.PriceLevel)
		assert.Nil(t, second.DisplayName.LanguageCode)
	})

	t.Run("zero results places null", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"places": null}`))
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "nothing here")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Nil(t, result.Places)
	})

	t.Run("unknown provider fields are dropped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"places":[{"id":"p1","formattedAddress":"addr","displayName":{"text":"X"},"location":{"latitude":1,"longitude":2},"rating":4.5,"websiteUri":"https://example.com"}]}`))
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "query")
		require.NoError(t, err)
		require.NotNil(t, result.Places)
		assert.Len(t, *result.Places, 1)
		assert.Equal(t, "p1", (*result.Places)[0].ID)
	})

	t.Run("api error response", func(t *testing.T) {
		var calls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "query")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "google API error")
		// Одна попытка, без ретраев
		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "query")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.SearchText(context.Background(), "query")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to execute request")
	})
}

func TestClient_ComputeRoutes(t *testing.T) {
	logger := zap.NewNop()

	origin := domain.Coordinate{Latitude: 37.419734, Longitude: -122.0827784}
	destination := domain.Coordinate{Latitude: 37.41767, Longitude: -122.079595}

	t.Run("successful request", func(t *testing.T) {
		mockResp := domain.RouteList{
			Routes: []domain.Route{
				{DistanceMeters: 772, Duration: "165s", Polyline: domain.Polyline{EncodedPolyline: "ipkcFfichV"}},
				{DistanceMeters: 890, Duration: "201s", Polyline: domain.Polyline{EncodedPolyline: "abkcFxichV"}},
				{DistanceMeters: 1120, Duration: "254s", Polyline: domain.Polyline{EncodedPolyline: "qqkcFzichV"}},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test_key", r.Header.Get("X-Goog-Api-Key"))
			assert.Equal(t, routesFieldMask, r.Header.Get("X-Goog-FieldMask"))

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			assert.Equal(t, "DRIVE", body["travelMode"])
			assert.Equal(t, "TRAFFIC_AWARE_OPTIMAL", body["routingPreference"])
			assert.Equal(t, true, body["computeAlternativeRoutes"])
			assert.Equal(t, "en-US", body["languageCode"])
			assert.Equal(t, "METRIC", body["units"])
			assert.Equal(t, "2023-10-15T15:01:23.045123456Z", body["departureTime"])

			modifiers := body["routeModifiers"].(map[string]interface{})
			assert.Equal(t, false, modifiers["avoidTolls"])
			assert.Equal(t, false, modifiers["avoidHighways"])
			assert.Equal(t, false, modifiers["avoidFerries"])

			latLng := body["origin"].(map[string]interface{})["location"].(map[string]interface{})["latLng"].(map[string]interface{})
			assert.InDelta(t, 37.419734, latLng["latitude"].(float64), 0.0001)
			assert.InDelta(t, -122.0827784, latLng["longitude"].(float64), 0.0001)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResp)
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.ComputeRoutes(context.Background(), origin, destination, "2023-10-15T15:01:23.045123456Z")
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, result.Routes, 3)

		// Порядок и значения провайдера сохраняются как есть
		assert.InDelta(t, 772, float64(result.Routes[0].DistanceMeters), 0.01)
		assert.Equal(t, "165s", result.Routes[0].Duration)
		assert.Equal(t, "ipkcFfichV", result.Routes[0].Polyline.EncodedPolyline)
		assert.Equal(t, "201s", result.Routes[1].Duration)
		assert.Equal(t, "254s", result.Routes[2].Duration)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"status":"INVALID_ARGUMENT"}}`))
		}))
		defer server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.ComputeRoutes(context.Background(), origin, destination, "2023-10-15T15:01:23Z")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "google API error")
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewGoogleClient(testConfig(server.URL), logger)

		result, err := client.ComputeRoutes(context.Background(), origin, destination, "2023-10-15T15:01:23Z")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to execute request")
	})
}
