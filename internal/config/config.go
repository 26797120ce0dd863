package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort  string
	JWTSecret string

	SessionTTL time.Duration
	TokenTTL   time.Duration

	// Simulated latencies of the demo: login, gateway charge, and how long
	// the success screen stays before returning to the cashier.
	AuthLatency    time.Duration
	ChargeLatency  time.Duration
	SuccessDisplay time.Duration

	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
}

// Load reads configuration from the environment, picking up a local .env
// first if one exists.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		SessionTTL:         getDuration("SESSION_TTL", 12*time.Hour),
		TokenTTL:           getDuration("TOKEN_TTL", 12*time.Hour),
		AuthLatency:        getDuration("AUTH_LATENCY", 1*time.Second),
		ChargeLatency:      getDuration("CHARGE_LATENCY", 2*time.Second),
		SuccessDisplay:     getDuration("SUCCESS_DISPLAY", 2*time.Second),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxRequestBodySize: 1 << 20, // 1MB
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
