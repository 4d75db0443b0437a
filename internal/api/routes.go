package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jroosing/dnsheader/internal/api/handlers"
	"github.com/jroosing/dnsheader/internal/api/middleware"
	"github.com/jroosing/dnsheader/internal/config"

	_ "github.com/jroosing/dnsheader/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	header := api.Group("/header")
	if cfg != nil {
		header.Use(middleware.LimitBody(cfg.API.MaxBodyBytes))
	}
	header.POST("/decode", h.DecodeHeader)
	header.POST("/encode", h.EncodeHeader)
}
