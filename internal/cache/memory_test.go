package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, hit, err := m.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get on empty cache = hit %v err %v", hit, err)
	}

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := m.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q hit %v err %v", data, hit, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := m.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := t0

	m := NewMemory()
	m.now = func() time.Time { return current }

	if err := m.Set(ctx, "k", []byte("v"), 60*time.Second); err != nil {
		t.Fatal(err)
	}

	current = t0.Add(59 * time.Second)
	if _, hit, _ := m.Get(ctx, "k"); !hit {
		t.Error("entry should survive until its TTL")
	}

	current = t0.Add(61 * time.Second)
	if _, hit, _ := m.Get(ctx, "k"); hit {
		t.Error("expired entry must read as absent")
	}
	if ok, _ := m.Exists(ctx, "k"); ok {
		t.Error("Exists must agree with Get about expiry")
	}
}

func TestMemoryPerKeyTTL(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := t0

	m := NewMemory()
	m.now = func() time.Time { return current }

	_ = m.Set(ctx, "short", []byte("a"), 10*time.Second)
	_ = m.Set(ctx, "long", []byte("b"), 10*time.Minute)

	current = t0.Add(30 * time.Second)
	if _, hit, _ := m.Get(ctx, "short"); hit {
		t.Error("short entry should have expired")
	}
	if _, hit, _ := m.Get(ctx, "long"); !hit {
		t.Error("long entry must be unaffected by the short one expiring")
	}
}

func TestMemoryClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_ = m.Set(ctx, "a", []byte("1"), time.Minute)
	_ = m.Set(ctx, "b", []byte("2"), time.Minute)

	if err := m.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b"} {
		if _, hit, _ := m.Get(ctx, key); hit {
			t.Errorf("key %q survived Clear", key)
		}
	}
}

func TestMemoryCleanupExpired(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := t0

	m := NewMemory()
	m.now = func() time.Time { return current }

	_ = m.Set(ctx, "old", []byte("a"), time.Second)
	_ = m.Set(ctx, "new", []byte("b"), time.Hour)

	current = t0.Add(time.Minute)
	m.CleanupExpired()

	m.mu.Lock()
	_, oldThere := m.entries["old"]
	_, newThere := m.entries["new"]
	m.mu.Unlock()

	if oldThere {
		t.Error("CleanupExpired should drop expired entries")
	}
	if !newThere {
		t.Error("CleanupExpired must keep live entries")
	}
}
