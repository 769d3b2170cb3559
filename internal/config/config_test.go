package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"LifestyleAdvisor/internal/geminiservice"
	"LifestyleAdvisor/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_API_URL", "GEMINI_TIMEOUT", "TRUST_PROXY",
		"SESSION_SECRET", "SESSION_MAX", "SESSION_TTL", "SUBMIT_RATE", "SUBMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TrustProxy)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, geminiservice.DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, geminiservice.DefaultAPIURL, cfg.Gemini.BaseURL)
	assert.Equal(t, geminiservice.DefaultTimeout, cfg.Gemini.Timeout)
	assert.Equal(t, session.DefaultMaxSessions, cfg.SessionMax)
	assert.Equal(t, session.DefaultTTL, cfg.SessionTTL)
	assert.Len(t, cfg.SessionSecret, 64)
	assert.Equal(t, 6.0, cfg.SubmitRate)
	assert.Equal(t, 3, cfg.SubmitBurst)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("GEMINI_API_KEY", " abc123 ")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("SESSION_SECRET", "topsecret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SUBMIT_RATE", "1.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "abc123", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, []byte("topsecret"), cfg.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 1.5, cfg.SubmitRate)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("SESSION_MAX", "-4")
	t.Setenv("TRUST_PROXY", "maybe")
	t.Setenv("SUBMIT_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, session.DefaultMaxSessions, cfg.SessionMax)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, 6.0, cfg.SubmitRate)
}

func TestLoad_GeminiTimeoutIsFixed(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_TIMEOUT", "1s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, geminiservice.DefaultTimeout, cfg.Gemini.Timeout)
}

func TestLoadDotEnv_ReadsFileWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_ENV=production\nADVISOR_DOTENV_ONLY=from-file\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("APP_ENV", "staging")
	t.Setenv("ADVISOR_DOTENV_ONLY", "")
	require.NoError(t, os.Unsetenv("ADVISOR_DOTENV_ONLY"))

	LoadDotEnv()
	LoadDotEnv()

	assert.Equal(t, "staging", os.Getenv("APP_ENV"))
	assert.Equal(t, "from-file", os.Getenv("ADVISOR_DOTENV_ONLY"))
}
