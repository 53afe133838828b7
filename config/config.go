package config

import (
	"os"
	"strconv"
)

// DefaultSecretKey signs session cookies when SECRET_KEY is unset.
// It is public, so any deployment that matters must override it.
const DefaultSecretKey = "8BYkEfBA6O6donzWlSihBXox7C0sKR6b"

const DefaultDatabaseURL = "sqlite:///blog.db"

type Config struct {
	DatabaseURL   string
	SecretKey     string
	Port          string
	GinMode       string
	SecureCookies bool
	DBLogLevel    string
}

func Load() *Config {
	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", DefaultDatabaseURL),
		SecretKey:     getEnv("SECRET_KEY", DefaultSecretKey),
		Port:          getEnv("PORT", "5000"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SecureCookies: getEnvBool("SESSION_COOKIE_SECURE", false),
		DBLogLevel:    getEnv("DB_LOG_LEVEL", "warn"),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return b
}
