/*
Package config reads the advisor's settings from a local .env file and the
process environment.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"LifestyleAdvisor/internal/geminiservice"
	"LifestyleAdvisor/internal/session"
	"LifestyleAdvisor/internal/utility"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort        = 8080
	defaultSubmitRate  = 6.0
	defaultSubmitBurst = 3
)

// Config is the resolved process configuration.
type Config struct {
	Port   int
	AppEnv string

	// TrustProxy makes the client IP come from X-Forwarded-For, as set by a
	// reverse proxy on a loopback or private address. Off, the peer address is used.
	TrustProxy bool

	Gemini geminiservice.Config

	SessionSecret []byte
	SessionMax    int
	SessionTTL    time.Duration

	// SubmitRate is submissions per minute allowed per client IP.
	SubmitRate  float64
	SubmitBurst int
}

// LoadDotEnv copies .env (when present) into the environment without
// overriding variables that are already set. It is safe to call more than once.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, reading from environment")
	}
}

// Load reads .env (when present) and the environment. A missing Gemini key is
// not an error here; it is reported when the advisor client is built so the
// UI can still come up and show it.
func Load() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{
		Port:       intEnv("PORT", defaultPort),
		AppEnv:     stringEnv("APP_ENV", "development"),
		TrustProxy: boolEnv("TRUST_PROXY", false),
		Gemini: geminiservice.Config{
			APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:   stringEnv("GEMINI_MODEL", geminiservice.DefaultModel),
			BaseURL: stringEnv("GEMINI_API_URL", geminiservice.DefaultAPIURL),
			Timeout: geminiservice.DefaultTimeout,
		},
		SessionMax:  intEnv("SESSION_MAX", session.DefaultMaxSessions),
		SessionTTL:  durationEnv("SESSION_TTL", session.DefaultTTL),
		SubmitRate:  floatEnv("SUBMIT_RATE", defaultSubmitRate),
		SubmitBurst: intEnv("SUBMIT_BURST", defaultSubmitBurst),
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		generated, err := utility.GenerateSecureToken(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		log.Warn().Msg("SESSION_SECRET is not set, using a per-process secret")
		secret = generated
	}
	cfg.SessionSecret = []byte(secret)

	return cfg, nil
}

// IsProduction reports whether secure cookies should be used.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msgf("Invalid integer, using %d", fallback)
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msgf("Invalid boolean, using %t", fallback)
		return fallback
	}
	return v
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msgf("Invalid number, using %g", fallback)
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msgf("Invalid duration, using %s", fallback)
		return fallback
	}
	return v
}
