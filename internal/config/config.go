package config

import "os"

// Config captures the process configuration. Everything comes from the
// environment so main stays lean.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// RedisAddr is the event stream backend. Empty disables event
	// publishing.
	RedisAddr string
	// JWTSecret signs session tokens.
	JWTSecret string
}

// FromEnv builds a Config from environment variables with development
// defaults.
func FromEnv() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
