package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/config"
	"github.com/phambaophuc/texture-resizer/internal/http/handlers"
	"github.com/phambaophuc/texture-resizer/internal/http/routes"
	"github.com/phambaophuc/texture-resizer/internal/services/processor"
	"github.com/phambaophuc/texture-resizer/internal/services/queue"
	"github.com/phambaophuc/texture-resizer/internal/services/storage"
)

const cacheCleanupInterval = time.Hour

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	imageProcessor, err := processor.NewFromConfig(cfg.Resizer)
	if err != nil {
		logger.Fatal("Failed to initialize image processor", zap.Error(err))
	}
	logger.Info("Resizer configured",
		zap.String("bitmap_scaler", cfg.Resizer.BitmapScaler),
		zap.String("buffer_scaler", cfg.Resizer.BufferScaler),
		zap.Int("max_pixels", imageProcessor.MaxPixels()),
	)

	storageService, err := storage.NewStorageService(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}
	defer storageService.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Continue without queue service for basic functionality
	var jobQueue handlers.JobQueue
	queueService, err := queue.NewQueueService(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Queue,
		cfg.Storage.MaxFileSize,
		imageProcessor,
		storageService,
		logger,
	)
	if err != nil {
		logger.Warn("Failed to initialize queue service", zap.Error(err))
	} else {
		defer queueService.Close()
		jobQueue = queueService

		for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
			if err := queueService.StartWorker(ctx, i); err != nil {
				logger.Error("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
			}
		}
	}

	go runCacheCleanup(ctx, storageService, logger)

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(imageProcessor, storageService, jobQueue, logger, cfg)

	router := routes.NewRouter(imageHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runCacheCleanup(ctx context.Context, s *storage.StorageService, logger *zap.Logger) {
	ticker := time.NewTicker(cacheCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CleanupCache(ctx); err != nil {
				logger.Warn("Cache cleanup failed", zap.Error(err))
			}
		}
	}
}
