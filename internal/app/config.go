package app

import (
	"time"

	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/utils"
)

type Config struct {
	Port string
	Mode string

	JWTSecretKey string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration

	GeminiEnabled bool
	RedisEnabled  bool
}

func LoadConfig(log *logger.Logger) Config {
	accessMinutes := utils.GetEnvAsInt("JWT_ACCESS_TTL_MINUTES", 15, log)
	refreshHours := utils.GetEnvAsInt("JWT_REFRESH_TTL_HOURS", 24*7, log)

	return Config{
		Port:          utils.GetEnv("PORT", "8080", log),
		Mode:          utils.GetEnv("APP_MODE", "dev", log),
		JWTSecretKey:  utils.GetEnv("JWT_SECRET_KEY", "", log),
		AccessTTL:     time.Duration(accessMinutes) * time.Minute,
		RefreshTTL:    time.Duration(refreshHours) * time.Hour,
		GeminiEnabled: utils.GetEnv("GEMINI_API_KEY", "", log) != "",
		RedisEnabled:  utils.GetEnv("REDIS_ADDR", "", log) != "",
	}
}
