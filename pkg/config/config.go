package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string

	FirebaseProject            string
	FirebaseServiceAccountJSON string
	FirebaseServiceAccountPath string
	StorageBucket              string

	// Cart and wishlist persistence: sqlite, file, firestore or memory.
	StateBackend string
	StatePath    string

	StoreCatalogPath string

	GeminiAPIKey string
	GeminiModels []string

	PriceCheckTimeoutSeconds int64
	WalmartBaseURL           string
	BestBuyBaseURL           string
}

var defaultGeminiModels = []string{
	"models/gemini-flash-latest",
	"models/gemini-flash-lite-latest",
	"models/gemini-2.0-flash-lite",
	"models/gemini-2.0-flash-exp",
	"models/gemini-2.0-flash",
	"models/gemini-2.5-flash-lite",
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "./serviceAccountKey.json"),
		StorageBucket:              getEnv("STORAGE_BUCKET", ""),

		StateBackend: getEnv("STATE_BACKEND", "sqlite"),
		StatePath:    getEnv("STATE_PATH", "./data/laptek-state.db"),

		StoreCatalogPath: getEnv("STORE_CATALOG_PATH", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModels: getEnvAsList("GEMINI_MODELS", defaultGeminiModels),

		PriceCheckTimeoutSeconds: getEnvAsInt64("PRICE_CHECK_TIMEOUT_SECONDS", 15),
		WalmartBaseURL:           getEnv("WALMART_BASE_URL", "https://www.walmart.ca"),
		BestBuyBaseURL:           getEnv("BESTBUY_BASE_URL", "https://www.bestbuy.ca"),
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
