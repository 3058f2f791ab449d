package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot-backend/internal/http/response"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type SkillGapHandler struct {
	log     *logger.Logger
	service services.SkillGapService
}

func NewSkillGapHandler(log *logger.Logger, service services.SkillGapService) *SkillGapHandler {
	return &SkillGapHandler{
		log:     log.With("handler", "SkillGapHandler"),
		service: service,
	}
}

type skillGapRequest struct {
	TargetCareerID uuid.UUID `json:"target_career_id" binding:"required"`
}

func (h *SkillGapHandler) Analyze(c *gin.Context) {
	var req skillGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err.Error()))
		return
	}

	analysis, err := h.service.Analyze(c.Request.Context(), req.TargetCareerID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, analysis)
}
