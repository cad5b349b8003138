package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob the server reads from the environment.
type Config struct {
	Port string

	AIProvider  string // "gemini" or "openai"
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
	AITimeout   time.Duration

	UnsplashAccessKey string
	ImageTimeout      time.Duration

	StoreBackend       string // "memory", "firestore" or "postgres"
	FirestoreProjectID string
	PostgresURL        string

	StaticDir string
}

// Load reads .env if present, then the process environment. Missing keys
// fall back to sane defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "5000"),

		AIProvider:  getEnv("AI_PROVIDER", "gemini"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeout:   getEnvSeconds("AI_TIMEOUT_SECONDS", 30),

		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		ImageTimeout:      getEnvSeconds("IMAGE_TIMEOUT_SECONDS", 10),

		StoreBackend:       getEnv("STORE_BACKEND", "memory"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),

		StaticDir: getEnv("STATIC_DIR", "."),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
