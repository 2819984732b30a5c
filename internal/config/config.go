package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DriverSupabase selects the HTTP remote store client.
	DriverSupabase = "supabase"
	// DriverMemory selects the in-process store (dev/demo mode).
	DriverMemory = "memory"
)

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreDriver   string        // "supabase" | "memory"
	SupabaseURL   string        // base URL of the remote store (ex: https://xyz.supabase.co)
	SupabaseKey   string        // project api key
	SupabaseToken string        // user access token (bearer)
	StoreTimeout  time.Duration // per-call timeout for remote store requests

	SeedFile     string   // optional path to a bookmarks seed yaml (empty = import disabled)
	AllowedHosts []string // optional, restrict access to specific Host headers

	// Redis snapshot mirror (optional, empty addr = disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenAddr:      getenv("LINKSHELF_LISTEN_ADDR", ":8080"),
		ShutdownTimeout: mustDuration("LINKSHELF_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKSHELF_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKSHELF_PRETTY_LOG", true),

		// Remote store
		StoreDriver:   getenv("LINKSHELF_STORE_DRIVER", DriverSupabase),
		SupabaseURL:   getenv("LINKSHELF_SUPABASE_URL", ""),
		SupabaseKey:   getenv("LINKSHELF_SUPABASE_KEY", ""),
		SupabaseToken: getenv("LINKSHELF_SUPABASE_TOKEN", ""),
		StoreTimeout:  mustDuration("LINKSHELF_STORE_TIMEOUT", 15*time.Second),

		SeedFile:     getenv("LINKSHELF_SEED_FILE", ""), // optional, empty = import disabled
		AllowedHosts: splitAndTrim(getenv("LINKSHELF_ALLOWED_HOSTS", "")),

		// Redis snapshot settings
		RedisAddr:           getenv("LINKSHELF_REDIS_ADDR", ""), // optional, empty = mirror disabled
		RedisUser:           getenv("LINKSHELF_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("LINKSHELF_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("LINKSHELF_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
	}

	switch cfg.StoreDriver {
	case DriverSupabase:
		// The HTTP driver cannot run without its endpoint and credentials.
		requireSet("LINKSHELF_SUPABASE_URL", cfg.SupabaseURL)
		requireSet("LINKSHELF_SUPABASE_KEY", cfg.SupabaseKey)
		requireSet("LINKSHELF_SUPABASE_TOKEN", cfg.SupabaseToken)
	case DriverMemory:
		// Nothing to validate.
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown LINKSHELF_STORE_DRIVER %q (want %q or %q)",
			cfg.StoreDriver, DriverSupabase, DriverMemory))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireSet(key, val string) {
	if val == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
