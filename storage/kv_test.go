package storage

import (
	"errors"
	"testing"
)

func TestStores(t *testing.T) {
	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("create file store: %v", err)
	}

	stores := map[string]KV{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			if err := store.Set("cart", `{"items":[]}`); err != nil {
				t.Fatalf("set: %v", err)
			}
			value, err := store.Get("cart")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if value != `{"items":[]}` {
				t.Fatalf("got %q", value)
			}

			if err := store.Set("cart", "updated"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if value, _ := store.Get("cart"); value != "updated" {
				t.Fatalf("after overwrite got %q", value)
			}

			if err := store.Remove("cart"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, err := store.Get("cart"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after remove, got %v", err)
			}

			// removing an absent key is not an error
			if err := store.Remove("cart"); err != nil {
				t.Fatalf("remove absent: %v", err)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Set("restaurant_cart", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, err := second.Get("restaurant_cart")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if value != "payload" {
		t.Fatalf("got %q", value)
	}
}

func TestFileStoreKeySanitized(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Set("../escape/attempt", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if value, err := store.Get("../escape/attempt"); err != nil || value != "v" {
		t.Fatalf("got %q, %v", value, err)
	}
}
