package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitLimiter_BurstThenRefill(t *testing.T) {
	l := NewSubmitLimiter(60, 2) // one token per second
	now := time.Now()

	assert.True(t, l.allowAt("1.1.1.1", now))
	assert.True(t, l.allowAt("1.1.1.1", now))
	assert.False(t, l.allowAt("1.1.1.1", now))

	assert.True(t, l.allowAt("2.2.2.2", now), "limits are per IP")
	assert.True(t, l.allowAt("1.1.1.1", now.Add(1100*time.Millisecond)))
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
