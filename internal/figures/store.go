package figures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"jobboard-backend/internal/shared/storage/object"
)

const contentType = "image/png"

// Store persists rendered figures as "<id>.png" in an object store.
type Store struct {
	objects object.ObjectStore
}

// NewStore wraps an object store. The store's root must already exist.
func NewStore(objects object.ObjectStore) *Store {
	return &Store{objects: objects}
}

// Key returns the object key for a figure.
func Key(id ID) string {
	return id.String() + ".png"
}

// Save writes the PNG bytes for id.
func (s *Store) Save(ctx context.Context, id ID, png []byte) error {
	if _, err := s.objects.SaveWithKey(ctx, Key(id), contentType, bytes.NewReader(png)); err != nil {
		return fmt.Errorf("save figure %s: %w", id, err)
	}
	return nil
}

// Load returns the stored bytes for a raw identifier. Malformed identifiers
// are reported as ErrNotFound.
func (s *Store) Load(ctx context.Context, raw string) ([]byte, error) {
	id, err := ParseID(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	rc, err := s.objects.Open(ctx, Key(id))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) || errors.Is(err, object.ErrInvalidKey) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, raw, err)
		}
		return nil, fmt.Errorf("open figure %s: %w", raw, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read figure %s: %w", raw, err)
	}
	return data, nil
}
