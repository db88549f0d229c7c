package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type Config struct {
	Env                 string        // Environment (dev, staging, production) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	StoreDriver  string // sqlite or postgres (default: sqlite)
	DatabaseFile string // SQLite database file (default: ./taskboard.db)
	DatabaseURL  string // Postgres connection string, required for the postgres driver
	PepperFile   string // File holding the password pepper (default: ./pepper)

	JWTAlgorithm  string        // HS256 or EdDSA (default: HS256)
	JWTSecret     string        // HS256 secret; generated per process when empty
	JWTKeyFile    string        // EdDSA PKCS8 PEM; generated when missing (default: ./jwt_ed25519.pem)
	MasterKeyFile string        // Optional: encrypts JWT_KEY_FILE at rest
	Issuer        string        // iss claim (default: taskboard)
	TokenTTL      time.Duration // Session token and cookie lifetime (default: 1h)

	BootstrapToken string   // Optional: enables POST /api/v1/bootstrap
	CORSOrigins    []string // Allowed browser origins (default: http://localhost:3000)

	StrictLimit httpx.RateLimitConfig // signup, login, bootstrap (RATELIMIT_STRICT_*)
	APILimit    httpx.RateLimitConfig // every /api route (RATELIMIT_API_*)
}

func LoadConfig() Config {
	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		StoreDriver:  getEnvOrDefault("STORE_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "taskboard.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		JWTAlgorithm:  getEnvOrDefault("JWT_ALGORITHM", "HS256"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTKeyFile:    getEnvOrDefault("JWT_KEY_FILE", "jwt_ed25519.pem"),
		MasterKeyFile: os.Getenv("JWT_MASTER_KEY_FILE"),
		Issuer:        getEnvOrDefault("JWT_ISSUER", "taskboard"),
		TokenTTL:      getEnvDurationOrDefault("TOKEN_TTL", time.Hour),

		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),
		CORSOrigins:    httpx.SplitOrigins(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),

		StrictLimit: httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit),
		APILimit:    httpx.ParseRateLimitFromEnv("API", httpx.APILimit),
	}

	return cfg
}

// Production reports whether cookies must be marked Secure and internal
// error text hidden.
func (c Config) Production() bool { return c.Env == "production" }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
