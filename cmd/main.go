package main

import (
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/app"
	"github.com/Rynhardt5/forest-and-flow/internal/config"
	"github.com/Rynhardt5/forest-and-flow/internal/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("config load failed: " + err.Error())
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}
	for _, warn := range warnings {
		logger.Log.Warn(warn)
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("app initialisation failed", zap.Error(err))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	logger.Log.Info("server started", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
}
