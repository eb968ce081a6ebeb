package main

// @title CrowdDetector API
// @version 1.0.0
// @description Сервис анализа изображений толпы. Принимает загруженное изображение, отправляет его мультимодальной модели Gemini с фиксированным промптом и нормализует свободный текст ответа в структурированную оценку: количество людей, балл плотности толпы 1-10, а также содержимое табло отправлений (рейсы, поезда, автобусы), если оно видно на снимке.

// @contact.name API Support
// @contact.email support@crowd-detector.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/crowd-detector/docs/swagger"
	"github.com/crowd-detector/internal/config"
	httpDelivery "github.com/crowd-detector/internal/delivery/http"
	"github.com/crowd-detector/internal/delivery/http/handler"
	"github.com/crowd-detector/internal/infrastructure/gemini"
	"github.com/crowd-detector/internal/pkg/logger"
	"github.com/crowd-detector/internal/usecase"
)

func main() {
	// 1. Load configuration
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

	log.Info("Starting CrowdDetector API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("model", cfg.Gemini.Model),
		zap.Int64("max_upload_bytes", cfg.Upload.MaxBytes),
	)

	// 3. Initialize Gemini vision client (единственный долгоживущий провайдер)
	visionModel, err := gemini.NewVisionClient(context.Background(), &cfg.Gemini, log)
	if err != nil {
		log.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	log.Info("Gemini client initialized")

	// 4. Initialize Use Case
	analyzeUC := usecase.NewAnalyzeUseCase(visionModel, log, cfg.Upload.MaxBytes)

	// 5. Initialize HTTP Handlers
	analyzeHandler := handler.NewAnalyzeHandler(analyzeUC, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, analyzeHandler)

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
