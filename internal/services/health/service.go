package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports whether the API can serve requests.
type Service struct {
	db      Pinger
	timeout time.Duration
}

// NewService constructs a health service. db may be nil when the
// in-memory repositories are in use.
func NewService(db Pinger) *Service {
	return &Service{db: db, timeout: 2 * time.Second}
}

// Status returns the health payload and whether every check passed.
func (s *Service) Status(ctx context.Context) (map[string]bool, bool) {
	if s == nil || s.db == nil {
		return map[string]bool{"ok": true}, true
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		return map[string]bool{"ok": false, "db": false}, false
	}
	return map[string]bool{"ok": true, "db": true}, true
}
