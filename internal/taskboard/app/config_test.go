package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"ENV", "PORT", "STORE_DRIVER", "JWT_ALGORITHM", "JWT_ISSUER", "TOKEN_TTL", "CORS_ORIGINS",
		"RATELIMIT_STRICT_REQUESTS", "RATELIMIT_STRICT_WINDOW_SEC", "RATELIMIT_STRICT_BURST",
		"RATELIMIT_API_REQUESTS", "RATELIMIT_API_WINDOW_SEC", "RATELIMIT_API_BURST",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "sqlite", cfg.StoreDriver)
	require.Equal(t, "HS256", cfg.JWTAlgorithm)
	require.Equal(t, "taskboard", cfg.Issuer)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.False(t, cfg.Production())
	require.Equal(t, httpx.StrictLimit, cfg.StrictLimit)
	require.Equal(t, httpx.APILimit, cfg.APILimit)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/taskboard")
	t.Setenv("TOKEN_TTL", "90")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := LoadConfig()
	require.True(t, cfg.Production())
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "postgres", cfg.StoreDriver)
	require.Equal(t, "postgres://u:p@db/taskboard", cfg.DatabaseURL)
	require.Equal(t, 90*time.Minute, cfg.TokenTTL, "bare integers are minutes")
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfigIgnoresBadNumbers(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("TOKEN_TTL", "soon")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoadConfigRateLimits(t *testing.T) {
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "1")
	t.Setenv("RATELIMIT_STRICT_BURST", "1")
	t.Setenv("RATELIMIT_API_WINDOW_SEC", "60")

	cfg := LoadConfig()
	require.Equal(t, 1, cfg.StrictLimit.RequestsPerWindow)
	require.Equal(t, 1, cfg.StrictLimit.Burst)
	require.Equal(t, httpx.StrictLimit.Window, cfg.StrictLimit.Window)
	require.Equal(t, time.Minute, cfg.APILimit.Window)
	require.Equal(t, httpx.APILimit.RequestsPerWindow, cfg.APILimit.RequestsPerWindow)
}

func TestLoadConfigRateLimitsFromDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RATELIMIT_STRICT_REQUESTS=2\nRATELIMIT_STRICT_BURST=2\n"), 0o600))

	// Registered first so t.Setenv's cleanup restores the original values.
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "")
	t.Setenv("RATELIMIT_STRICT_BURST", "")
	require.NoError(t, os.Unsetenv("RATELIMIT_STRICT_REQUESTS"))
	require.NoError(t, os.Unsetenv("RATELIMIT_STRICT_BURST"))
	require.NoError(t, godotenv.Load(envFile))

	cfg := LoadConfig()
	require.Equal(t, 2, cfg.StrictLimit.RequestsPerWindow)
	require.Equal(t, 2, cfg.StrictLimit.Burst)
}
