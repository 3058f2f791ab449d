package utils

import (
	"testing"

	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

func envLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestGetEnv(t *testing.T) {
	log := envLogger(t)

	t.Setenv("CAREERPILOT_TEST_VAR", "set-value")
	if got := GetEnv("CAREERPILOT_TEST_VAR", "fallback", log); got != "set-value" {
		t.Errorf("got %q, want set-value", got)
	}
	if got := GetEnv("CAREERPILOT_MISSING_VAR", "fallback", log); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	log := envLogger(t)

	t.Setenv("CAREERPILOT_TEST_INT", "42")
	if got := GetEnvAsInt("CAREERPILOT_TEST_INT", 7, log); got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	t.Setenv("CAREERPILOT_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("CAREERPILOT_TEST_INT", 7, log); got != 7 {
		t.Errorf("got %d, want default 7 for unparseable value", got)
	}
}
