package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/justice-chain/classifier/internal/service"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowedOrigins []string
	Provider       string
	Model          string
}

func NewRouter(cfg RouterConfig, svc *service.ClassifyService, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	health := NewHealthHandler(svc, cfg.Provider, cfg.Model)
	classify := NewClassifyHandler(svc)

	router.GET("/", health.Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)
	router.POST("/classify", classify.Classify)

	return router
}
