package health

import (
	"context"
	"errors"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestStatusWithoutDatabase(t *testing.T) {
	body, ok := NewService(nil).Status(context.Background())
	if !ok || !body["ok"] {
		t.Fatalf("expected healthy, got %v", body)
	}
	if _, present := body["db"]; present {
		t.Fatalf("unexpected db key: %v", body)
	}
}

func TestStatusReportsDatabase(t *testing.T) {
	body, ok := NewService(fakePinger{}).Status(context.Background())
	if !ok || !body["db"] {
		t.Fatalf("expected db up, got %v", body)
	}

	body, ok = NewService(fakePinger{err: errors.New("down")}).Status(context.Background())
	if ok || body["ok"] || body["db"] {
		t.Fatalf("expected unhealthy, got %v", body)
	}
}
