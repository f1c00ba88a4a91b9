package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	practicesession "github.com/Eldoprano/test-drive-peru-A1/internal/domain/practice_session"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DatabasePath     string
	QuestionBankPath string

	// Quiz rules
	QuestionTimeCap time.Duration // longest time counted for one answer
	TestLength      int
	TestDuration    time.Duration

	CORSAllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:    mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:       getenvDefault("DATABASE_PATH", "drivetheory.db"),
		QuestionBankPath:   getenvDefault("QUESTION_BANK_PATH", "quiz_data.json"),
		QuestionTimeCap:    getDurationDefault("QUESTION_TIME_CAP", 30*time.Second),
		TestLength:         getIntDefault("TEST_LENGTH", 40),
		TestDuration:       getDurationDefault("TEST_DURATION", 40*time.Minute),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Session returns the quiz rules as a session configuration.
func (c *Config) Session() practicesession.SessionConfig {
	sc := practicesession.DefaultConfig()
	sc.TimeCap = c.QuestionTimeCap
	sc.TestLength = c.TestLength
	sc.TestDuration = c.TestDuration
	return sc
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("config: %s=%q is not a valid positive duration", k, v)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a valid positive integer", k, v)
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
