package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Google GoogleConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type GoogleConfig struct {
	APIKey         string
	PlacesURL      string
	RoutesURL      string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

const (
	defaultPlacesURL = "https://places.googleapis.com/v1/places:searchText"
	defaultRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"
)

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален: в контейнере конфигурация приходит через переменные окружения
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Google: GoogleConfig{
			APIKey:         viper.GetString("GOOGLE_API_KEY"),
			PlacesURL:      viper.GetString("GOOGLE_PLACES_URL"),
			RoutesURL:      viper.GetString("GOOGLE_ROUTES_URL"),
			RequestTimeout: time.Duration(viper.GetInt("GOOGLE_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Google.PlacesURL == "" {
		cfg.Google.PlacesURL = defaultPlacesURL
	}
	if cfg.Google.RoutesURL == "" {
		cfg.Google.RoutesURL = defaultRoutesURL
	}
	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 30 * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры. Отсутствие ключа Google API --
// фатальная ошибка старта, а не ошибка обработки запроса.
func (c *Config) Validate() error {
	if c.Google.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
