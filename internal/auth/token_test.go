package auth

import (
	"testing"
	"time"

	"hackquest-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndResolve(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodecWithClock(func() time.Time { return fixed })

	token := codec.Issue("9b2c61e4")
	userID, err := codec.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "9b2c61e4", userID)
}

func TestResolveRejectsMalformedTokens(t *testing.T) {
	codec := NewTokenCodec()

	for _, token := range []string{"", "token", "token_", "bearer_u1_123", "token__123"} {
		_, err := codec.Resolve(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "token %q", token)
	}
}
