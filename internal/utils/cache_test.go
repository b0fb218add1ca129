package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	cache := NewCache[string, []byte]()

	cache.Set("a.swift", []byte("protocol A {}"))

	value, exists := cache.Get("a.swift")
	if !exists {
		t.Fatal("expected cached value to exist")
	}
	if string(value) != "protocol A {}" {
		t.Errorf("Get returned %q", value)
	}

	if _, exists := cache.Get("b.swift"); exists {
		t.Error("expected miss for uncached key")
	}
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache[string, int]()

	cache.Set("one", 1)
	cache.Set("two", 2)
	cache.Delete("one")

	if _, exists := cache.Get("one"); exists {
		t.Error("expected deleted key to be gone")
	}
	if cache.Size() != 1 {
		t.Errorf("Size() = %d, expected 1", cache.Size())
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, int]()

	cache.Set("one", 1)
	cache.Set("two", 2)
	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("Size() = %d after Clear", cache.Size())
	}
}

func TestCacheKeys(t *testing.T) {
	cache := NewCache[string, int]()

	cache.Set("a.swift", 1)
	cache.Set("b.swift", 2)

	keys := cache.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys() returned %d keys, expected 2", len(keys))
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		seen[key] = true
	}
	if !seen["a.swift"] || !seen["b.swift"] {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestCacheFileValidationHitsWhileUnchanged(t *testing.T) {
	cache := NewCache[string, string]()

	path := filepath.Join(t.TempDir(), "Service.swift")
	if err := os.WriteFile(path, []byte("protocol Service {}"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := cache.SetWithFileInfo(path, "protocol Service {}", path); err != nil {
		t.Fatalf("SetWithFileInfo failed: %v", err)
	}

	value, exists := cache.GetWithFileValidation(path, path)
	if !exists {
		t.Fatal("expected a cache hit for the unchanged file")
	}
	if value != "protocol Service {}" {
		t.Errorf("cached value = %q", value)
	}
}

func TestCacheFileValidationEvictsOnChange(t *testing.T) {
	cache := NewCache[string, string]()

	path := filepath.Join(t.TempDir(), "Service.swift")
	if err := os.WriteFile(path, []byte("protocol Service {}"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := cache.SetWithFileInfo(path, "protocol Service {}", path); err != nil {
		t.Fatalf("SetWithFileInfo failed: %v", err)
	}

	// Rewrite with different content and size so the stat check trips
	// even on filesystems with coarse mtime resolution.
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(path, []byte("protocol Service { func ping() }"), 0644); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}

	if _, exists := cache.GetWithFileValidation(path, path); exists {
		t.Error("expected eviction after the file changed")
	}
	if cache.Size() != 0 {
		t.Errorf("Size() = %d after eviction", cache.Size())
	}
}

func TestCacheFileValidationMissingFile(t *testing.T) {
	cache := NewCache[string, string]()

	if _, exists := cache.GetWithFileValidation("key", "/nonexistent/Service.swift"); exists {
		t.Error("expected miss for a missing file")
	}
}

func TestCacheSetWithFileInfoMissingFile(t *testing.T) {
	cache := NewCache[string, string]()

	if err := cache.SetWithFileInfo("key", "content", "/nonexistent/Service.swift"); err == nil {
		t.Error("expected an error when the file cannot be stat'd")
	}
}
