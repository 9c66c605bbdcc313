package driver

import (
	"path/filepath"
	"testing"

	"lumen/internal/project"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	cache, err := OpenDiskCache("lumen-test", filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return cache
}

func testPayload(key project.Digest) *DiskPayload {
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "plot.call.toml",
		ContentHash: key,
		Calls:       []CachedCall{{Callee: "plot", Status: 1}},
		Diagnostics: []CachedDiagnostic{{Severity: 1, Code: 3001, Message: "m", Start: 0, End: 4}},
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	key := project.HashBytes([]byte("fixture content"))

	var miss DiskPayload
	if hit, err := cache.Get(key, &miss); err != nil || hit {
		t.Fatalf("Get before Put = (%v, %v)", hit, err)
	}

	if err := cache.Put(key, testPayload(key)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Path != "plot.call.toml" || len(got.Calls) != 1 || len(got.Diagnostics) != 1 {
		t.Errorf("payload = %+v", got)
	}
	if got.Calls[0].Callee != "plot" || got.Diagnostics[0].Code != 3001 {
		t.Errorf("payload content = %+v", got)
	}
}

func TestDiskCacheRejectsSchemaMismatch(t *testing.T) {
	cache := testCache(t)
	key := project.HashBytes([]byte("content"))

	payload := testPayload(key)
	payload.Schema = diskCacheSchemaVersion + 1
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Errorf("stale schema must miss, got (%v, %v)", hit, err)
	}
}

func TestDiskCacheRejectsKeyMismatch(t *testing.T) {
	cache := testCache(t)
	key := project.HashBytes([]byte("content"))

	payload := testPayload(project.HashBytes([]byte("other content")))
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Errorf("digest mismatch must miss, got (%v, %v)", hit, err)
	}
}

func TestDiskCacheNilReceiver(t *testing.T) {
	var cache *DiskCache
	key := project.HashBytes([]byte("x"))
	if err := cache.Put(key, testPayload(key)); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Errorf("nil Get = (%v, %v)", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := testCache(t)
	key := project.HashBytes([]byte("content"))
	if err := cache.Put(key, testPayload(key)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var got DiskPayload
	if hit, err := cache.Get(key, &got); err == nil && hit {
		t.Error("dropped cache must not hit")
	}
}
