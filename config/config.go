package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AppConfig holds every load-time setting of the application. It is read once
// at startup and passed down explicitly; nothing re-reads the environment later.
type AppConfig struct {
	// UseMockData selects the in-memory mock provider instead of the real API.
	UseMockData bool
	// APIBaseURL is the base URL of the denuncias backend, e.g.
	// "http://localhost:8080/EcoDenunciasLP/api". Required unless mock mode is on.
	APIBaseURL string

	// Simulated latency bounds for the mock provider.
	MockDelayMin time.Duration
	MockDelayMax time.Duration

	Port string

	// Redis is optional; the write rate limiter only mounts when an address is set.
	RedisAddress  string
	RedisPassword string
	// DenunciaRateLimit is the max write requests per client IP per 24h window.
	DenunciaRateLimit int
}

// Load builds the configuration from environment variables, applying defaults
// for anything optional.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		UseMockData:       envBool("USE_MOCK_DATA", false),
		APIBaseURL:        os.Getenv("API_BASE_URL"),
		MockDelayMin:      time.Duration(envInt("MOCK_DELAY_MIN_MS", 300)) * time.Millisecond,
		MockDelayMax:      time.Duration(envInt("MOCK_DELAY_MAX_MS", 1500)) * time.Millisecond,
		Port:              os.Getenv("PORT"),
		RedisAddress:      os.Getenv("REDIS_ADDRESS"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		DenunciaRateLimit: envInt("DENUNCIA_RATE_LIMIT", 20),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MockDelayMax < cfg.MockDelayMin {
		cfg.MockDelayMax = cfg.MockDelayMin
	}
	if !cfg.UseMockData && cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must be set when USE_MOCK_DATA is disabled")
	}

	return cfg, nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
