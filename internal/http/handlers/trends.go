package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/http/response"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type TrendHandler struct {
	log     *logger.Logger
	service services.TrendService
}

func NewTrendHandler(log *logger.Logger, service services.TrendService) *TrendHandler {
	return &TrendHandler{
		log:     log.With("handler", "TrendHandler"),
		service: service,
	}
}

func (h *TrendHandler) GetTrends(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	report, err := h.service.GetTrends(c.Request.Context(), services.TrendQuery{
		Industry: c.Query("industry"),
		Skill:    c.Query("skill"),
		Limit:    limit,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, report)
}
