package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"jobboard-backend/internal/shared/storage/object"
)

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "figures")
	if _, err := New(root); err != nil {
		t.Fatalf("New: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("stat root: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected root to be a directory")
	}
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	n, err := store.SaveWithKey(ctx, "a.png", "image/png", bytes.NewReader([]byte("payload")))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != int64(len("payload")) {
		t.Fatalf("expected %d bytes written, got %d", len("payload"), n)
	}

	rc, err := store.Open(ctx, "a.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("unexpected content %q", got)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the stored file, got %d entries", len(entries))
	}
}

func TestOpenMissingReturnsNotFound(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = store.Open(context.Background(), "missing.png")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []string{"../escape.png", "/abs.png", "", "."}
	for _, key := range tests {
		if _, err := store.Open(context.Background(), key); !errors.Is(err, object.ErrInvalidKey) {
			t.Fatalf("Open(%q): expected ErrInvalidKey, got %v", key, err)
		}
		if _, err := store.SaveWithKey(context.Background(), key, "image/png", bytes.NewReader(nil)); !errors.Is(err, object.ErrInvalidKey) {
			t.Fatalf("SaveWithKey(%q): expected ErrInvalidKey, got %v", key, err)
		}
	}
}
