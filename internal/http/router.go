package http

import (
	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/http/handlers"
	"github.com/careerpilot/careerpilot-backend/internal/http/middleware"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthService services.AuthService

	HealthHandler         *handlers.HealthHandler
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	SkillHandler          *handlers.SkillHandler
	RecommendationHandler *handlers.RecommendationHandler
	SkillGapHandler       *handlers.SkillGapHandler
	ResumeHandler         *handlers.ResumeHandler
	TrendHandler          *handlers.TrendHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))
	router.Use(middleware.CORS())

	router.GET("/healthcheck", cfg.HealthHandler.Check)

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)

		api.GET("/skills", cfg.SkillHandler.ListSkills)
		api.GET("/careers", cfg.SkillHandler.ListCareers)

		api.GET("/industry-trends", middleware.OptionalAuth(cfg.AuthService), cfg.TrendHandler.GetTrends)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(cfg.AuthService))
		{
			authed.POST("/logout", cfg.AuthHandler.Logout)
			authed.GET("/me", cfg.UserHandler.Me)

			authed.GET("/user-skills", cfg.SkillHandler.ListUserSkills)
			authed.POST("/user-skills", cfg.SkillHandler.RecordUserSkill)
			authed.DELETE("/user-skills/:skillID", cfg.SkillHandler.RemoveUserSkill)

			authed.POST("/career-recommendations", cfg.RecommendationHandler.Generate)
			authed.POST("/skill-gap-analysis", cfg.SkillGapHandler.Analyze)
			authed.POST("/resume-optimization", cfg.ResumeHandler.Optimize)
		}
	}

	return router
}
