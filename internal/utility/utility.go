package utility

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// SubmitLimiter throttles assessment submissions per client IP, since each
// one spends an outbound Gemini call. Callers key it on echo's c.RealIP(),
// whose source is fixed by the router's IPExtractor.
type SubmitLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
}

// maxTrackedIPs bounds how many per-IP limiters are kept at once.
const maxTrackedIPs = 4096

// NewSubmitLimiter allows perMinute submissions per IP with the given burst.
func NewSubmitLimiter(perMinute float64, burst int) *SubmitLimiter {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *rate.Limiter](maxTrackedIPs)
	return &SubmitLimiter{
		limit:    rate.Limit(perMinute / time.Minute.Seconds()),
		burst:    burst,
		limiters: cache,
	}
}

// Allow reports whether ip may submit now.
func (l *SubmitLimiter) Allow(ip string) bool {
	return l.allowAt(ip, time.Now())
}

func (l *SubmitLimiter) allowAt(ip string, now time.Time) bool {
	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, limiter)
	}
	return limiter.AllowN(now, 1)
}

// GenerateSecureToken returns length random bytes, hex encoded.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
