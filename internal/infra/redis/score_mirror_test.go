package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestScoreMirrorAccumulates(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mirror := NewScoreMirror(client, time.Minute)
	ctx := context.Background()

	if err := mirror.AddPoints(ctx, "u1", 30); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := mirror.AddPoints(ctx, "u1", 20); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := mirror.AddPoints(ctx, "u2", 40); err != nil {
		t.Fatalf("add points: %v", err)
	}

	score, err := mirror.Score(ctx, "u1")
	if err != nil || score != 50 {
		t.Fatalf("expected u1 at 50, got %d (%v)", score, err)
	}

	top, err := mirror.TopN(ctx, 1)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	if len(top) != 1 || top[0].Member != "u1" {
		t.Fatalf("expected u1 on top, got %+v", top)
	}

	if score, _ := mirror.Score(ctx, "ghost"); score != 0 {
		t.Fatalf("expected absent member to read 0, got %d", score)
	}
}
