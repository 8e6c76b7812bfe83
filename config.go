package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type config struct {
	Addr            string
	RedisAddr       string
	CacheTTL        time.Duration
	RateLimit       int
	HistoryCapacity int
	CORSOrigins     []string
}

// loadConfig reads the server settings from the environment.
func loadConfig() config {
	cfg := config{
		Addr:            ":" + getenv("PORT", "8080"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CacheTTL:        time.Hour,
		RateLimit:       getenvInt("RATE_LIMIT_PER_MINUTE", 60),
		HistoryCapacity: getenvInt("HISTORY_CAPACITY", 1000),
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Warning: invalid CACHE_TTL %q, using %s", raw, cfg.CacheTTL)
		} else {
			cfg.CacheTTL = ttl
		}
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
