package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Zouhir-Harch/site-backend/internal/server"
	"github.com/Zouhir-Harch/site-backend/pkg/api"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "site-backend",
	})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := server.NewRouter(api.New(), logger)
	logger.Info("starting server", "port", port)
	if err := router.Engine().Run(":" + port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
