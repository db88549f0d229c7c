package taskboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies that login attempts for one email are rate
// limited (strict limit is 10 req/min).
func TestRateLimitLogin(t *testing.T) {
	client := setupContainerWithDefaultRateLimits(t)
	ctx := context.Background()

	var lastErr error
	for i := range 11 {
		_, err := client.Login(ctx, "victim@example.com", "wrong-password")
		if i < 10 {
			require.Error(t, err, "Invalid credentials should fail")
			require.NotContains(t, err.Error(), "429", "Should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	assertStatus(t, lastErr, http.StatusTooManyRequests, "11th login attempt")
	t.Logf("Successfully rate limited after 10 login attempts")
}
