package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "layout:R-HSA-1", []byte(`{"x":1}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:R-HSA-1")
	if err != nil || !hit {
		t.Fatalf("Get() = (%s, %v, %v), want a hit", data, hit, err)
	}
	if string(data) != `{"x":1}` {
		t.Fatalf("Get() data = %q, want %q", data, `{"x":1}`)
	}

	if err := c.Delete(ctx, "layout:R-HSA-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:R-HSA-1"); hit {
		t.Fatalf("expected miss after Delete")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get() = (hit=%v, err=%v), want an expired miss", hit, err)
	}
}

func TestLRUCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewLRUCache(2)
	if err != nil {
		t.Fatalf("NewLRUCache: %v", err)
	}
	defer c.Close()

	c.Set(ctx, "a", []byte("1"), 0)
	c.Set(ctx, "b", []byte("2"), 0)
	c.Set(ctx, "c", []byte("3"), 0) // evicts "a"

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Fatalf("expected \"a\" to be evicted")
	}
	if data, hit, _ := c.Get(ctx, "c"); !hit || string(data) != "3" {
		t.Fatalf("Get(c) = (%s, %v), want (3, true)", data, hit)
	}
}

func TestLRUCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewLRUCache(4)
	defer c.Close()

	c.Set(ctx, "k", []byte("v"), time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	tk1 := k.TreeKey([]string{"GO:1", "GO:2"}, TreeKeyOpts{OntologyVersion: "v1"})
	tk2 := k.TreeKey([]string{"GO:1", "GO:2"}, TreeKeyOpts{OntologyVersion: "v2"})
	if tk1 == tk2 {
		t.Error("different ontology versions should produce different tree keys")
	}

	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{ConfigHash: "cfg-a"})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{ConfigHash: "cfg-b"})
	if lk1 == lk2 {
		t.Error("different config hashes should produce different layout keys")
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("different formats should produce different artifact keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:acme:")

	key := scoped.LayoutKey("hash123", LayoutKeyOpts{})
	if len(key) < len("tenant:acme:") || key[:len("tenant:acme:")] != "tenant:acme:" {
		t.Errorf("ScopedKeyer key should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	a := scoped.LayoutKey("h", LayoutKeyOpts{})
	b := NewScopedKeyer(NewDefaultKeyer(), "prefix:").LayoutKey("h", LayoutKeyOpts{})
	if a != b {
		t.Errorf("nil inner should default to DefaultKeyer: %s != %s", a, b)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("expected single successful call, got err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound || calls != 1 {
		t.Errorf("non-retryable error should stop immediately, got err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("should return context error: %v", err)
	}
}
