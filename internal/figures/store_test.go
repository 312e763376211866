package figures

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jobboard-backend/internal/shared/storage/object/local"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	objects, err := local.New(dir)
	if err != nil {
		t.Fatalf("local.New: %v", err)
	}
	return NewStore(objects), dir
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)
	id := NewIDGenerator().New("years_of_experience", "salary")
	payload := []byte("\x89PNG\r\n\x1a\nfake")

	if err := store.Save(context.Background(), id, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, id.String()+".png")); err != nil {
		t.Fatalf("expected artifact file on disk: %v", err)
	}

	got, err := store.Load(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("loaded bytes differ")
	}
}

func TestStoreLoadUnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load(context.Background(), "1700000000-feature=a-target=b-00000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreLoadMalformedID(t *testing.T) {
	store, _ := newTestStore(t)
	for _, raw := range []string{"nope", "../../etc/passwd", ""} {
		if _, err := store.Load(context.Background(), raw); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Load(%q): expected ErrNotFound, got %v", raw, err)
		}
	}
}
