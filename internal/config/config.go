package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	Env        string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	PublicDir  string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	RegisterRateMax int
	LoginRateMax    int
	ResetRateMax    int
	RateWindow      time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		MySQLDSN:   getEnv("MYSQL_DSN", "root:@tcp(localhost:3306)/spudhouse?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		PublicDir:  getEnv("PUBLIC_DIR", "public"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@spudhouse.local"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		RegisterRateMax: getEnvInt("REGISTER_RATE_MAX", 5),
		LoginRateMax:    getEnvInt("LOGIN_RATE_MAX", 10),
		ResetRateMax:    getEnvInt("RESET_RATE_MAX", 5),
		RateWindow:      time.Duration(getEnvInt("RATE_WINDOW_MINUTES", 15)) * time.Minute,
	}
}

// Dev reports whether the app runs in development mode. Development mode
// echoes password-reset codes in API responses instead of relying on SMTP.
func (c *Config) Dev() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
