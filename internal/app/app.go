package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/careerpilot/careerpilot-backend/internal/clients/gemini"
	"github.com/careerpilot/careerpilot-backend/internal/clients/rediscache"
	"github.com/careerpilot/careerpilot-backend/internal/data/db"
	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	apphttp "github.com/careerpilot/careerpilot-backend/internal/http"
	"github.com/careerpilot/careerpilot-backend/internal/http/handlers"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Config Config

	db *gorm.DB

	geminiClient *gemini.Client
	matchCache   rediscache.MatchCache

	server *apphttp.Server
}

type repoSet struct {
	users     repos.UserRepo
	tokens    repos.UserTokenRepo
	skills    repos.SkillRepo
	careers   repos.CareerRepo
	userSkill repos.UserSkillRepo
	resources repos.LearningResourceRepo
	insights  repos.IndustryInsightRepo
	recs      repos.CareerRecommendationRepo
	gaps      repos.SkillGapAnalysisRepo
}

type serviceSet struct {
	auth      services.AuthService
	user      services.UserService
	catalog   services.CatalogService
	userSkill services.UserSkillService
	recs      services.RecommendationService
	gaps      services.SkillGapService
	resume    services.ResumeService
	trends    services.TrendService
}

func New(ctx context.Context) (*App, error) {
	log, err := logger.New(getMode())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	cfg := LoadConfig(log)
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := db.SeedCatalog(pg.DB(), log); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	a := &App{
		Log:    log,
		Config: cfg,
		db:     pg.DB(),
	}
	a.wireClients(ctx)

	r := a.wireRepos()
	s := a.wireServices(r)
	engine := apphttp.NewRouter(a.wireRouter(r, s))

	a.server = apphttp.NewServer(log, engine, ":"+cfg.Port)
	return a, nil
}

// wireClients attaches the optional integrations. A missing key or
// unreachable backend logs a warning and the app runs without that client.
func (a *App) wireClients(ctx context.Context) {
	if a.Config.GeminiEnabled {
		client, err := gemini.New(ctx, a.Log)
		if err != nil {
			a.Log.Warn("Gemini client unavailable, model-backed analysis disabled", "error", err)
		} else {
			a.geminiClient = client
		}
	}
	if a.Config.RedisEnabled {
		cache, err := rediscache.NewMatchCache(a.Log)
		if err != nil {
			a.Log.Warn("Redis unavailable, recommendation caching disabled", "error", err)
		} else {
			a.matchCache = cache
		}
	}
}

func (a *App) wireRepos() repoSet {
	return repoSet{
		users:     repos.NewUserRepo(a.db, a.Log),
		tokens:    repos.NewUserTokenRepo(a.db, a.Log),
		skills:    repos.NewSkillRepo(a.db, a.Log),
		careers:   repos.NewCareerRepo(a.db, a.Log),
		userSkill: repos.NewUserSkillRepo(a.db, a.Log),
		resources: repos.NewLearningResourceRepo(a.db, a.Log),
		insights:  repos.NewIndustryInsightRepo(a.db, a.Log),
		recs:      repos.NewCareerRecommendationRepo(a.db, a.Log),
		gaps:      repos.NewSkillGapAnalysisRepo(a.db, a.Log),
	}
}

func (a *App) wireServices(r repoSet) serviceSet {
	var provider services.TextCompletionProvider
	if a.geminiClient != nil {
		provider = a.geminiClient
	}
	return serviceSet{
		auth:      services.NewAuthService(a.db, a.Log, r.users, r.tokens, a.Config.JWTSecretKey, a.Config.AccessTTL, a.Config.RefreshTTL),
		user:      services.NewUserService(a.Log, r.users),
		catalog:   services.NewCatalogService(a.Log, r.skills, r.careers),
		userSkill: services.NewUserSkillService(a.Log, r.skills, r.userSkill, a.matchCache),
		recs:      services.NewRecommendationService(a.Log, r.careers, r.userSkill, r.recs, a.matchCache),
		gaps:      services.NewSkillGapService(a.Log, r.careers, r.userSkill, r.resources, r.gaps),
		resume:    services.NewResumeService(a.Log, r.careers, provider),
		trends:    services.NewTrendService(a.Log, r.insights, r.userSkill),
	}
}

func (a *App) wireRouter(r repoSet, s serviceSet) apphttp.RouterConfig {
	return apphttp.RouterConfig{
		Log:                   a.Log,
		AuthService:           s.auth,
		HealthHandler:         handlers.NewHealthHandler(a.db, a.Log),
		AuthHandler:           handlers.NewAuthHandler(a.Log, s.auth),
		UserHandler:           handlers.NewUserHandler(a.Log, s.user),
		SkillHandler:          handlers.NewSkillHandler(a.Log, s.catalog, s.userSkill),
		RecommendationHandler: handlers.NewRecommendationHandler(a.Log, s.recs),
		SkillGapHandler:       handlers.NewSkillGapHandler(a.Log, s.gaps),
		ResumeHandler:         handlers.NewResumeHandler(a.Log, s.resume),
		TrendHandler:          handlers.NewTrendHandler(a.Log, s.trends),
	}
}

// Run serves until the process receives SIGINT or SIGTERM, then drains
// in-flight requests before returning.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		a.Log.Info("Signal received, shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Close() {
	if a.geminiClient != nil {
		a.geminiClient.Close()
	}
	if a.matchCache != nil {
		if err := a.matchCache.Close(); err != nil {
			a.Log.Warn("Close cache failed", "error", err)
		}
	}
	a.Log.Sync()
}

func getMode() string {
	if mode := os.Getenv("APP_MODE"); mode != "" {
		return mode
	}
	return "dev"
}
