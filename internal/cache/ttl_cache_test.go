package cache

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache[string, int](10, time.Minute)

	c.Set("a", 1)
	value, ok := c.Get("a")
	if !ok || value != 1 {
		t.Fatalf("expected a=1, got %d ok=%v", value, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("did not expect missing key")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache[string, int](10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected expired key")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after expiry, got %d", c.Len())
	}
}

func TestTTLCacheEviction(t *testing.T) {
	c := NewTTLCache[int, int](2, time.Minute)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Fatalf("expected oldest entry evicted")
	}
}

func TestTTLCacheModify(t *testing.T) {
	c := NewTTLCache[string, int](10, time.Minute)

	increment := func(current int, _ bool) int { return current + 1 }

	value, ok := c.Modify("counter", increment)
	if !ok || value != 1 {
		t.Fatalf("expected counter=1, got %d ok=%v", value, ok)
	}

	value, ok = c.Modify("counter", increment)
	if !ok || value != 2 {
		t.Fatalf("expected counter=2, got %d ok=%v", value, ok)
	}

	if _, ok := c.Modify("nil", nil); ok {
		t.Fatalf("expected nil fn to be rejected")
	}
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, int](10, time.Minute)

	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected deleted key")
	}
	c.Delete("a")
}
