package config

import (
	"os"
	"strconv"
)

// Config holds everything the app reads from the environment. The
// remote sheet endpoint is the only persistent store; when it is not
// configured the app falls back to the in-memory row store so the
// site can run locally without the spreadsheet.
type Config struct {
	Port           string
	GinMode        string
	SheetsAPIURL   string
	SessionHashKey string
	FrontendDir    string
	LoaderSeconds  int
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		SheetsAPIURL:   getEnv("SHEETS_API_URL", ""),
		SessionHashKey: getEnv("SESSION_HASH_KEY", "EvaaniSessionHashKeyDev0000000000"),
		FrontendDir:    getEnv("FRONTEND_DIR", "Frontend"),
		LoaderSeconds:  getEnvInt("LOADER_SECONDS", 6),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
