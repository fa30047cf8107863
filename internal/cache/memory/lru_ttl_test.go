package memory

import (
	"context"
	"testing"
	"time"
)

type item struct {
	name  string
	parts []string
}

func cloneItem(it *item) *item {
	if it == nil {
		return nil
	}
	cp := *it
	cp.parts = append([]string(nil), it.parts...)
	return &cp
}

// fakeClock — управляемые часы.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL[*item]("test", 2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "id-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "id-1", &item{name: "x"})
	got, ok := c.Get(ctx, "id-1")
	if !ok || got.name != "x" {
		t.Fatalf("expected hit for id-1")
	}
}

func TestSet_EmptyKeyIgnored(t *testing.T) {
	c := NewLRUCacheTTL[int]("test", 2, 0)
	_ = c.Set(context.Background(), "", 1)
	if c.Len() != 0 {
		t.Fatalf("empty key must not be stored")
	}
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCacheTTL[int]("test", 2, 100*time.Millisecond, WithClock[int](clock.now))
	ctx := context.Background()

	_ = c.Set(ctx, "ttl", 1)
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	clock.advance(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestTTL_SlidingOnGet(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCacheTTL[int]("test", 2, 100*time.Millisecond, WithClock[int](clock.now))
	ctx := context.Background()

	_ = c.Set(ctx, "s", 1)
	clock.advance(80 * time.Millisecond)
	if _, ok := c.Get(ctx, "s"); !ok {
		t.Fatalf("expected hit before TTL")
	}
	// Get продлил TTL — ещё 80мс запись жива.
	clock.advance(80 * time.Millisecond)
	if _, ok := c.Get(ctx, "s"); !ok {
		t.Fatalf("expected sliding TTL to keep entry alive")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL[int]("test", 2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", 1)
	_ = c.Set(ctx, "B", 2)
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", 3)

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestTake_OneShot(t *testing.T) {
	c := NewLRUCacheTTL[int]("test", 2, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "once", 42)
	v, ok := c.Take(ctx, "once")
	if !ok || v != 42 {
		t.Fatalf("expected first Take to return value, got %v %v", v, ok)
	}
	if _, ok := c.Take(ctx, "once"); ok {
		t.Fatalf("second Take must miss")
	}
	if _, ok := c.Get(ctx, "once"); ok {
		t.Fatalf("Get after Take must miss")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL[*item]("test", 1, 0, WithClone(cloneItem))
	ctx := context.Background()
	orig := &item{name: "Z", parts: []string{"x"}}
	_ = c.Set(ctx, "Z", orig)

	// меняем то, что вернул Get — не должно влиять на кэш
	o1, _ := c.Get(ctx, "Z")
	o1.parts[0] = "changed"

	o2, _ := c.Get(ctx, "Z")
	if o2.parts[0] == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}
