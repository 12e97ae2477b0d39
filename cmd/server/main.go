package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/database"
	"github.com/ak1058/Ai-Recipe-Maker/logger"
	"github.com/ak1058/Ai-Recipe-Maker/routes"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.Init(cfg)
	if err != nil {
		logger.Fatal("Database initialization failed", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.Setup(r, cfg, db)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
