package config_test

import (
	"slices"
	"testing"
	"time"

	"github.com/Eldoprano/test-drive-peru-A1/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := config.Load()

	if cfg.ServerAddress != ":8080" || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected server settings: %+v", cfg)
	}
	if cfg.DatabasePath != "drivetheory.db" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.QuestionBankPath != "quiz_data.json" {
		t.Errorf("expected default bank path, got %q", cfg.QuestionBankPath)
	}
	if cfg.QuestionTimeCap != 30*time.Second {
		t.Errorf("expected 30s time cap, got %v", cfg.QuestionTimeCap)
	}
	if cfg.TestLength != 40 || cfg.TestDuration != 40*time.Minute {
		t.Errorf("expected 40 questions in 40m, got %d in %v", cfg.TestLength, cfg.TestDuration)
	}
	if !slices.Equal(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("expected wildcard origin, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("QUESTION_TIME_CAP", "10s")
	t.Setenv("TEST_LENGTH", "20")
	t.Setenv("TEST_DURATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://quiz.example.com")

	cfg := config.Load()

	sc := cfg.Session()
	if sc.TimeCap != 10*time.Second || sc.TestLength != 20 || sc.TestDuration != 15*time.Minute {
		t.Errorf("unexpected session config: %+v", sc)
	}
	if sc.TickInterval != time.Second {
		t.Errorf("expected default tick interval kept, got %v", sc.TickInterval)
	}

	want := []string{"http://localhost:5173", "https://quiz.example.com"}
	if !slices.Equal(cfg.CORSAllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
}
