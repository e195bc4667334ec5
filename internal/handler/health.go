package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justice-chain/classifier/internal/model"
	"github.com/justice-chain/classifier/internal/service"
)

// 헬스체크 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

type HealthHandler struct {
	svc      *service.ClassifyService
	provider string
	model    string
}

func NewHealthHandler(svc *service.ClassifyService, provider, modelName string) *HealthHandler {
	return &HealthHandler{svc: svc, provider: provider, model: modelName}
}

// Root godoc
// @Summary AI service health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:           "AI service is running",
		APIKeyConfigured: h.svc.Configured(),
		Provider:         h.provider,
		Model:            h.model,
	})
}
