package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingAccessSecret  = errors.New("JWT_SECRET is not set")
	ErrMissingRefreshSecret = errors.New("JWT_REFRESH_SECRET is not set")
	ErrBadDuration          = errors.New("not a valid Go duration (e.g. 15m, 168h)")
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret            string
	JWTRefreshSecret     string
	JWTExpiration        time.Duration
	JWTRefreshExpiration time.Duration

	// Server
	Port        string
	CORSOrigins string

	// Logging
	LogFile string

	// env vars that were set but did not parse; Validate rejects them
	badDurations []string
}

func Load() *Config {
	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "sunseeker_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogFile: getEnv("LOG_FILE", ""),
	}

	cfg.JWTExpiration = cfg.durationEnv("JWT_EXPIRATION", 15*time.Minute)
	cfg.JWTRefreshExpiration = cfg.durationEnv("JWT_REFRESH_EXPIRATION", 168*time.Hour)
	return cfg
}

// Validate rejects a configuration that cannot sign tokens, and any duration
// env var that was set but unparsable. A silent fallback there would hand
// out tokens with a lifetime the operator never chose.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingAccessSecret
	}
	if c.JWTRefreshSecret == "" {
		return ErrMissingRefreshSecret
	}
	if len(c.badDurations) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(c.badDurations, ", "), ErrBadDuration)
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func (c *Config) durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		c.badDurations = append(c.badDurations, key+"="+raw)
		return fallback
	}
	return d
}
