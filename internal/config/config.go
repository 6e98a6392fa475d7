// Package config reads runtime settings from the environment, after loading
// a local .env file when one exists.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read from the environment.
type Config struct {
	Port         string
	LogLevel     string
	ClientOrigin string
	JWTSecret    string
	TokenTTL     time.Duration
	SessionTTL   time.Duration
	DailySalt    string
	AnswersFile  string
	AllowedFile  string

	// AllowFixedAnswer lets POST /game/new pick its own secret. Test hook,
	// off unless ALLOW_FIXED_ANSWER is true.
	AllowFixedAnswer bool
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:     time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		SessionTTL:   time.Duration(envInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),

		AllowFixedAnswer: envBool("ALLOW_FIXED_ANSWER"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt falls back to def for unset, malformed or non-positive values.
func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// envBool is false for unset or malformed values.
func envBool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}
