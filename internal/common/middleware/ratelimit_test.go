package middleware

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucketExhausts(t *testing.T) {
	tb := NewTokenBucket(2, 1)
	ctx := context.Background()

	if !tb.Allow(ctx) || !tb.Allow(ctx) {
		t.Fatalf("expected first two requests allowed")
	}
	if tb.Allow(ctx) {
		t.Fatalf("expected third request denied with empty bucket")
	}
}

func TestSlidingWindowCapsRequests(t *testing.T) {
	sw := NewSlidingWindow(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !sw.Allow(ctx) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if sw.Allow(ctx) {
		t.Fatalf("expected fourth request denied inside window")
	}
}
