package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"triviaapi/config"
	"triviaapi/handlers"
	"triviaapi/middleware"
	"triviaapi/repository"
	"triviaapi/routes"
	"triviaapi/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if cfg.SeedCategories {
		seeded, err := repository.SeedCategories(context.Background(), db)
		if err != nil {
			logger.Fatal("Failed to seed categories", zap.Error(err))
		}
		if seeded > 0 {
			logger.Info("Seeded default categories", zap.Int("count", seeded))
		}
	}

	// Initialize services and handlers
	triviaService := services.NewTriviaService(repository.NewTriviaRepository(db), services.NewRandomPicker())
	triviaHandler := handlers.NewTriviaHandler(triviaService, logger)

	router := routes.NewRouter(logger, triviaHandler, middleware.NewMetrics())

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// signal.NotifyContext cancels ctx on the first SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("Server starting", zap.String("addr", cfg.Addr()), zap.String("db_driver", cfg.DBDriver))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
	<-shutdownDone

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("Server stopped")
}
