package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ClassroomBaseURL string        // classroom REST API root
	RequestTimeout   time.Duration // per-request timeout against the classroom API
	RefreshInterval  time.Duration // periodic feed refresh interval
	Lookback         time.Duration // rolling fetch window size (default: last 48h)
	FallbackFile     string        // optional path overriding the embedded fallback dataset

	// Auth endpoint rate limiting
	AuthRateBurst  int // token bucket capacity
	AuthRatePerMin int // refill per IP per minute

	// Redis (credential persistence)
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, grows exponentially
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HBL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HBL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HBL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HBL_PRETTY_LOG", true),

		// Feed retrieval
		ClassroomBaseURL: getenv("HBL_CLASSROOM_BASE_URL", "https://classroom.googleapis.com/v1"),
		RequestTimeout:   mustDuration("HBL_REQUEST_TIMEOUT", 10*time.Second),
		RefreshInterval:  mustDuration("HBL_REFRESH_INTERVAL", 15*time.Minute),
		Lookback:         mustDuration("HBL_LOOKBACK_WINDOW", 48*time.Hour),
		FallbackFile:     getenv("HBL_FALLBACK_FILE", ""), // Optional, empty = embedded dataset

		// Auth endpoint rate limiting
		AuthRateBurst:  getenvInt("HBL_AUTH_RATE_BURST", 5),
		AuthRatePerMin: getenvInt("HBL_AUTH_RATE_PER_MIN", 10),

		// Redis settings
		RedisAddr:             requireEnv("HBL_REDIS_ADDR"),
		RedisUser:             getenv("HBL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("HBL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("HBL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("HBL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("HBL_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("HBL_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("HBL_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: HBL_REDIS_PASSWORD is required when HBL_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
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

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
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
