// Package redis mirrors leaderboard points into a Redis sorted set. The
// mirror is best-effort operational state (dashboards, cross-instance
// reads); the in-memory user store stays authoritative and the HTTP
// leaderboard is always ranked deterministically from it.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:points"

// ScoreMirror maintains a ZSET of user total points.
type ScoreMirror struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreMirror(client *redis.Client, ttl time.Duration) *ScoreMirror {
	return &ScoreMirror{client: client, ttl: ttl}
}

// AddPoints increments the user's mirrored score.
func (m *ScoreMirror) AddPoints(ctx context.Context, userID string, delta int) error {
	pipe := m.client.Pipeline()
	pipe.ZIncrBy(ctx, leaderboardKey, float64(delta), userID)
	if m.ttl > 0 {
		pipe.Expire(ctx, leaderboardKey, m.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// TopN returns the highest-scored user IDs with their mirrored points.
func (m *ScoreMirror) TopN(ctx context.Context, n int64) ([]redis.Z, error) {
	return m.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
}

// Score returns the mirrored points for one user, or 0 when absent.
func (m *ScoreMirror) Score(ctx context.Context, userID string) (int, error) {
	score, err := m.client.ZScore(ctx, leaderboardKey, userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(score), nil
}
