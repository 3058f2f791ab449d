package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/http/response"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type RecommendationHandler struct {
	log     *logger.Logger
	service services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:     log.With("handler", "RecommendationHandler"),
		service: service,
	}
}

func (h *RecommendationHandler) Generate(c *gin.Context) {
	results, err := h.service.GetRecommendations(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recommendations": results})
}
