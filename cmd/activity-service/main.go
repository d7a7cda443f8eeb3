// Package main запускает HTTP-сервис записи учеников на школьные кружки
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-registration-service/internal/config"
	httpapi "activity-registration-service/internal/http"
	"activity-registration-service/internal/registry"
	"activity-registration-service/internal/service"
)

func main() {
	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации (config.yaml + ENV)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Каталог кружков: встроенный или из файла, указанного в конфигурации
	activities := registry.DefaultActivities()
	if cfg.Seed.File != "" {
		activities, err = config.LoadActivities(cfg.Seed.File)
		if err != nil {
			log.Fatalf("failed to load activities seed: %v", err)
		}
		logger.Info("loaded activities seed", slog.String("file", cfg.Seed.File))
	}

	// 1. Инициализация реестра кружков
	reg, err := registry.New(activities)
	if err != nil {
		log.Fatalf("failed to init registry: %v", err)
	}

	// 2. Инициализация сервиса
	activityService := service.NewActivityService(reg)

	// 3. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(activityService, logger, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.Int("activities", len(activities)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
