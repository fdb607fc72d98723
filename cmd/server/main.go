package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/config"
	"github.com/naebu/naebu_backend/internal/database"
	"github.com/naebu/naebu_backend/internal/logger"
	"github.com/naebu/naebu_backend/internal/routes"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogPath)
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	if err := database.SeedContent(db); err != nil {
		log.Fatal("content seed failed", zap.Error(err))
	}

	r := gin.Default()
	routes.Register(r, db, cfg, log)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
