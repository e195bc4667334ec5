package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justice-chain/classifier/internal/model"
	"github.com/justice-chain/classifier/internal/service"
)

const noDescriptionMessage = "No description provided"

type ClassifyHandler struct {
	svc *service.ClassifyService
}

func NewClassifyHandler(svc *service.ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{svc: svc}
}

// Classify godoc
// @Summary Classify FIR priority
// @Tags classify
// @Accept json
// @Produce json
// @Param request body model.ClassifyRequest true "Incident description"
// @Success 200 {object} model.ClassifyResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /classify [post]
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req model.ClassifyRequest
	// 빈 body는 description 누락과 동일하게 처리
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.svc.Classify(c.Request.Context(), req)
	if err != nil {
		var upstreamErr *service.UpstreamError
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: noDescriptionMessage})
		case errors.As(err, &upstreamErr):
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: upstreamErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
