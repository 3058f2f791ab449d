package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/http/response"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type ResumeHandler struct {
	log     *logger.Logger
	service services.ResumeService
}

func NewResumeHandler(log *logger.Logger, service services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		log:     log.With("handler", "ResumeHandler"),
		service: service,
	}
}

type resumeRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	TargetJobTitle string `json:"target_job_title" binding:"required"`
}

func (h *ResumeHandler) Optimize(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err.Error()))
		return
	}

	analysis, err := h.service.Optimize(c.Request.Context(), req.ResumeText, req.TargetJobTitle)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, analysis)
}
