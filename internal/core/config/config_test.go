package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "REDIS_URL",
	"NUVEMSHOP_API_URL", "NUVEMSHOP_TOKEN", "NUVEMSHOP_USER_ID", "NUVEMSHOP_USER_AGENT",
	"HTTP_TIMEOUT", "HTTP_MAX_ATTEMPTS", "HTTP_RETRY_BACKOFF",
	"REPORT_OUTPUT_DIR", "REPORT_ORDER_STATUSES", "COUPON_ALLOWLIST", "COUPON_SUFFIX",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range managedKeys {
			os.Unsetenv(key)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("NUVEMSHOP_TOKEN", "tok_default")
	os.Setenv("NUVEMSHOP_USER_ID", "123456")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Empty(t, cfg.RedisURL)

	assert.Equal(t, "https://api.tiendanube.com/v1", cfg.Nuvemshop.APIURL)
	assert.NotEmpty(t, cfg.Nuvemshop.UserAgent)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 5, cfg.HTTP.MaxAttempts)
	assert.Equal(t, time.Second, cfg.HTTP.RetryBackoff)

	assert.Equal(t, ".", cfg.Report.OutputDir)
	assert.Equal(t, []string{"open", "closed"}, cfg.Report.OrderStatuses)
	assert.Equal(t, []string{"MDM"}, cfg.Report.CouponAllowList)
	assert.Equal(t, "10", cfg.Report.CouponSuffix)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("NUVEMSHOP_API_URL", "https://api.example.com/v1")
	os.Setenv("NUVEMSHOP_TOKEN", "tok_123")
	os.Setenv("NUVEMSHOP_USER_ID", "42")
	os.Setenv("HTTP_TIMEOUT", "5s")
	os.Setenv("HTTP_MAX_ATTEMPTS", "3")
	os.Setenv("REPORT_ORDER_STATUSES", "open,closed,cancelled")
	os.Setenv("COUPON_ALLOWLIST", "MDM,VIP")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "tok_123", cfg.Nuvemshop.Token)
	assert.Equal(t, "https://api.example.com/v1/42/orders", cfg.Nuvemshop.OrdersURL())
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.MaxAttempts)
	assert.Equal(t, []string{"open", "closed", "cancelled"}, cfg.Report.OrderStatuses)
	assert.Equal(t, []string{"MDM", "VIP"}, cfg.Report.CouponAllowList)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
NUVEMSHOP_TOKEN=tok_staging
NUVEMSHOP_USER_ID=777
REPORT_OUTPUT_DIR=/tmp/reports
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "777", cfg.Nuvemshop.UserID)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

func TestLoad_InvalidMaxAttempts(t *testing.T) {
	clearEnv(t)
	os.Setenv("NUVEMSHOP_TOKEN", "tok")
	os.Setenv("NUVEMSHOP_USER_ID", "1")
	os.Setenv("HTTP_MAX_ATTEMPTS", "0")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "HTTP_MAX_ATTEMPTS")
}
