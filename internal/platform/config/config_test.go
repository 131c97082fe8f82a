package config_test

import (
	"testing"

	"github.com/SscSPs/ledger_saas_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CASH_ACCOUNT_KEYWORDS", "")
	t.Setenv("CAPITAL_ACCOUNT_CODE", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"kas", "bank"}, cfg.CashAccountKeywords)
	assert.Equal(t, "3001", cfg.CapitalAccountCode)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("CASH_ACCOUNT_KEYWORDS", " Cash , bank,, petty ")
	t.Setenv("CAPITAL_ACCOUNT_CODE", "3100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"Cash", "bank", "petty"}, cfg.CashAccountKeywords)
	assert.Equal(t, "3100", cfg.CapitalAccountCode)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}
