package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// DCTW API
	APIBaseURL string        // base URL of the listing API
	APIKey     string        // optional, sent as x-api-key when set
	APITimeout time.Duration // per-request timeout (default: 30s)
	UserAgent  string        // optional override of the default User-Agent

	// Preferences
	PreferencesFile string // path to the preferences JSON document

	// Cache
	CacheBackend string // "memory" | "redis"

	// Redis (only read when CacheBackend is "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

// fileConfig is the optional YAML overlay. Only keys that make sense to pin
// in a file are exposed; env vars still win.
type fileConfig struct {
	ListenPort      string `yaml:"listen_port"`
	LogLevel        string `yaml:"log_level"`
	APIBaseURL      string `yaml:"api_base_url"`
	APIKey          string `yaml:"api_key"`
	UserAgent       string `yaml:"user_agent"`
	PreferencesFile string `yaml:"preferences_file"`
	CacheBackend    string `yaml:"cache_backend"`
	RedisAddr       string `yaml:"redis_addr"`
}

func Load() *Config {
	file := loadFile(os.Getenv("DCTW_CONFIG_FILE"))

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DCTW_LISTEN_PORT", withDefault(file.ListenPort, ":8080")),
		ShutdownTimeout: mustDuration("DCTW_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DCTW_LOG_LEVEL", withDefault(file.LogLevel, "info")),
		PrettyLog: mustBool("DCTW_PRETTY_LOG", true),

		// API settings
		APIBaseURL: getenv("DCTW_API_BASE_URL", file.APIBaseURL),
		APIKey:     getenv("DCTW_API_KEY", file.APIKey),
		APITimeout: mustDuration("DCTW_API_TIMEOUT", 30*time.Second),
		UserAgent:  getenv("DCTW_USER_AGENT", file.UserAgent),

		// Preferences
		PreferencesFile: getenv("DCTW_PREFERENCES_FILE", withDefault(file.PreferencesFile, "config.json")),

		// Cache settings
		CacheBackend: getenv("DCTW_CACHE_BACKEND", withDefault(file.CacheBackend, "memory")),

		// Redis settings
		RedisAddr:           getenv("DCTW_REDIS_ADDR", file.RedisAddr),
		RedisUser:           getenv("DCTW_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("DCTW_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DCTW_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	switch cfg.CacheBackend {
	case "memory":
	case "redis":
		if cfg.RedisAddr == "" {
			panic("❌ FATAL: DCTW_REDIS_ADDR is required when DCTW_CACHE_BACKEND=redis")
		}
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid DCTW_CACHE_BACKEND: %s (want memory or redis)", cfg.CacheBackend))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.APIKey != "" {
			cfgCopy.APIKey = "***REDACTED***"
		}
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// loadFile reads the optional YAML overlay. A missing path is fine; an
// unreadable or malformed file is fatal since the operator asked for it.
func loadFile(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Cannot read config file %s: %v", path, err))
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		panic(fmt.Sprintf("❌ FATAL: Cannot parse config file %s: %v", path, err))
	}
	return fc
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func withDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
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
