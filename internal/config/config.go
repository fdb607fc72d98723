package config

import (
	"os"
)

type Config struct {
	Port string

	// Database. DB_DRIVER selects postgres (default) or sqlite for local runs.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Admin gate. When ADMIN_PASSWORD_HASH (bcrypt) is set it takes
	// precedence over the plain ADMIN_PASSWORD.
	AdminPassword     string
	AdminPasswordHash string

	// Session cookie
	SessionSecret   string
	SessionTTLHours string
	CookieDomain    string

	// External collaborators
	FrontendOrigin string
	WebhookURL     string
	ImageHostURL   string
	ImageHostKey   string

	// Logging
	LogLevel string
	LogPath  string
}

func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),

		DBDriver:   getenv("DB_DRIVER", "postgres"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "naebu_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		SQLitePath: getenv("SQLITE_PATH", "./naebu.db"),

		AdminPassword:     getenv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		SessionSecret:   getenv("SESSION_SECRET", "supersecret_change_me"),
		SessionTTLHours: getenv("SESSION_TTL_HOURS", "12"),
		CookieDomain:    getenv("COOKIE_DOMAIN", ""),

		FrontendOrigin: getenv("FRONTEND_ORIGIN", "https://naebu-frontend.vercel.app"),
		WebhookURL:     getenv("WEBHOOK_URL", ""),
		ImageHostURL:   getenv("IMAGE_HOST_URL", ""),
		ImageHostKey:   getenv("IMAGE_HOST_KEY", ""),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogPath:  getenv("LOG_PATH", "logs/naebu.log"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
