package main

// @title Multimap Backend API
// @version 1.0.0
// @description Бэкенд-прослойка между мобильным клиентом и Google Maps API.
// @description Принимает упрощённые запросы на текстовый поиск мест и расчёт
// @description маршрутов, переформатирует их в запросы к Google Places API и
// @description Google Routes API и возвращает клиенту подмножество полей ответа.
// @description Бизнес-логики нет: геокодинг, маршрутизация и ранжирование
// @description целиком на стороне Google.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/multimap-backend/docs"
	"github.com/multimap-backend/internal/config"
	httpDelivery "github.com/multimap-backend/internal/delivery/http"
	"github.com/multimap-backend/internal/delivery/http/handler"
	"github.com/multimap-backend/internal/infrastructure/google"
	"github.com/multimap-backend/internal/pkg/logger"
	"github.com/multimap-backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration (missing GOOGLE_API_KEY is fatal before the listener binds)
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Multimap Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize Google API client (shared http.Client + API key, read-only after start)
	googleClient := google.NewGoogleClient(&cfg.Google, log)

	log.Info("Google API client initialized")

	// 4. Initialize Use Cases
	placesUC := usecase.NewPlacesUseCase(googleClient, log)
	routesUC := usecase.NewRoutesUseCase(googleClient, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	placesHandler := handler.NewPlacesHandler(placesUC, log)
	routesHandler := handler.NewRoutesHandler(routesUC, log)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placesHandler,
		routesHandler,
	)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
