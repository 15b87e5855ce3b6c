package main

import (
	"os"

	"craftpantry/config"
	"craftpantry/db"
	"craftpantry/logger"
	"craftpantry/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.InitializeLogger()
	defer logger.Close()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/development.yaml"
	}

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	r := gin.Default()
	if err := routes.SetupRoutes(r, cfg); err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}
	defer db.Close()

	logger.Info("starting server", zap.String("port", cfg.ServerConfig.Port))
	if err := r.Run(":" + cfg.ServerConfig.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
