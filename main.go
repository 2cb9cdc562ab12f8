package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/erikmaday/clauditorium/internal/api"
	"github.com/erikmaday/clauditorium/internal/claude"
	"github.com/erikmaday/clauditorium/internal/config"
	"github.com/erikmaday/clauditorium/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CLAUDE_API_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	logger.Info("claude api server starting",
		"version", api.Version,
		"addr", cfg.Addr(),
		"timeout_seconds", cfg.TimeoutSeconds,
		"cors_enabled", cfg.EnableCORS,
		"claude_bin", cfg.ClaudeBin)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	handlers := api.NewHandler(cfg, claude.NewRunner(cfg))
	handlers.RegisterRoutes(router)

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
