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

type SkillHandler struct {
	log              *logger.Logger
	catalogService   services.CatalogService
	userSkillService services.UserSkillService
}

func NewSkillHandler(log *logger.Logger, catalogService services.CatalogService, userSkillService services.UserSkillService) *SkillHandler {
	return &SkillHandler{
		log:              log.With("handler", "SkillHandler"),
		catalogService:   catalogService,
		userSkillService: userSkillService,
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.catalogService.ListSkills(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}

func (h *SkillHandler) ListCareers(c *gin.Context) {
	careers, err := h.catalogService.ListCareers(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"careers": careers})
}

func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	skills, err := h.userSkillService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_skills": skills})
}

type recordSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id" binding:"required"`
	ProficiencyLevel string    `json:"proficiency_level" binding:"required"`
	YearsExperience  float64   `json:"years_experience"`
}

func (h *SkillHandler) RecordUserSkill(c *gin.Context) {
	var req recordSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err.Error()))
		return
	}

	saved, err := h.userSkillService.Record(c.Request.Context(), req.SkillID, req.ProficiencyLevel, req.YearsExperience)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, saved)
}

func (h *SkillHandler) RemoveUserSkill(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("skillID"))
	if err != nil {
		response.RespondError(c, fmt.Errorf("%w: invalid skill id", apperr.ErrInvalidInput))
		return
	}
	if err := h.userSkillService.Remove(c.Request.Context(), skillID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "skill removed"})
}
