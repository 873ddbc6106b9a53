// Package auth implements the placeholder identity scheme: an opaque bearer
// token that embeds the user identifier. Resolution is kept behind the
// Resolver interface so a real credential system (JWT, sessions) can replace
// it without touching the scoring or aggregation logic.
package auth

import (
	"fmt"
	"strings"
	"time"

	"hackquest-service/internal/domain"
)

// Resolver maps an opaque bearer token to a user identifier.
type Resolver interface {
	Resolve(token string) (string, error)
}

// Issuer mints a token for a user identifier.
type Issuer interface {
	Issue(userID string) string
}

// TokenCodec issues and resolves tokens of the form token_<userID>_<nonce>.
// This is not a credential format; the nonce only makes tokens distinct.
type TokenCodec struct {
	now func() time.Time
}

func NewTokenCodec() *TokenCodec {
	return &TokenCodec{now: time.Now}
}

// NewTokenCodecWithClock is test-only for deterministic tokens.
func NewTokenCodecWithClock(now func() time.Time) *TokenCodec {
	return &TokenCodec{now: now}
}

// Issue mints a token for the given user.
func (c *TokenCodec) Issue(userID string) string {
	return fmt.Sprintf("token_%s_%d", userID, c.now().UnixNano())
}

// Resolve extracts the user identifier from a token. Anything that does not
// match the expected shape resolves to ErrUnauthorized.
func (c *TokenCodec) Resolve(token string) (string, error) {
	parts := strings.Split(token, "_")
	if len(parts) < 3 || parts[0] != "token" || parts[1] == "" {
		return "", domain.ErrUnauthorized
	}
	// Everything between the prefix and the trailing nonce is the
	// identifier, so IDs containing underscores survive the round trip.
	return strings.Join(parts[1:len(parts)-1], "_"), nil
}
