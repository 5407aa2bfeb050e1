package cache

import (
	"context"
	"testing"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/models"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()
	var dest map[string]string
	hit, err := GetJSON(ctx, "anything", &dest)
	if err != nil || hit {
		t.Fatalf("disabled get want miss got hit=%v err=%v", hit, err)
	}
	if err := SetJSON(ctx, "anything", map[string]string{"a": "b"}, 0); err != nil {
		t.Fatalf("disabled set should be noop: %v", err)
	}

	pc := NewProductCache(0)
	pc.Set(ctx, &models.Product{ID: 1})
	if got := pc.Get(ctx, 1); got != nil {
		t.Fatalf("disabled product cache should miss, got %+v", got)
	}
	pc.Invalidate(ctx, 1)
}

func TestBuildKey(t *testing.T) {
	if got := BuildKey(" product:7 "); got != redisPrefix+":product:7" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := BuildKey(""); got != redisPrefix {
		t.Fatalf("empty key want prefix got %s", got)
	}
	if got := productKey(7); got != "product:7" {
		t.Fatalf("unexpected product key %s", got)
	}
}
