package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Addr            string
	DatabasePath    string
	StoreBackend    string
	RedisURL        string
	SessionLifetime time.Duration
	CORSOrigins     []string
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		DatabasePath:    "table_tennis.db",
		StoreBackend:    BackendSQLite,
		RedisURL:        "redis://localhost:6379/0",
		SessionLifetime: 24 * time.Hour,
	}
}

// Load reads .env when present and overlays the environment on the defaults
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv("STORE_BACKEND"); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v := getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := getenv("SESSION_LIFETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_LIFETIME %q: %w", v, err)
		}
		cfg.SessionLifetime = d
	}
	if v := getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = SplitList(v)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.SessionLifetime <= 0 {
		return fmt.Errorf("session lifetime must be positive, got %s", c.SessionLifetime)
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
