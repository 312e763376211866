package figures

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/shared/util"
)

const suffixLen = 8

// ID identifies a rendered figure. Its string form is
// "{unix-seconds}-feature={feature}-target={target}-{8 hex}".
type ID struct {
	Timestamp int64
	Feature   string
	Target    string
	Suffix    string
}

// String renders the canonical identifier.
func (id ID) String() string {
	return fmt.Sprintf("%d-feature=%s-target=%s-%s", id.Timestamp, id.Feature, id.Target, id.Suffix)
}

// ParseID parses the canonical identifier. Anything that could not have been
// produced by IDGenerator is rejected.
func ParseID(raw string) (ID, error) {
	if raw == "" || strings.ContainsAny(raw, `/\`) || strings.Contains(raw, "..") {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	tsPart, rest, ok := strings.Cut(raw, "-feature=")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil || ts < 0 {
		return ID{}, fmt.Errorf("%w: bad timestamp in %q", ErrInvalidID, raw)
	}

	dash := strings.LastIndex(rest, "-")
	if dash < 0 {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	suffix := rest[dash+1:]
	if !isHex(suffix) {
		return ID{}, fmt.Errorf("%w: bad suffix in %q", ErrInvalidID, raw)
	}
	rest = rest[:dash]

	sep := strings.LastIndex(rest, "-target=")
	if sep < 0 {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	feature, target := rest[:sep], rest[sep+len("-target="):]
	if feature == "" || target == "" {
		return ID{}, fmt.Errorf("%w: empty feature or target in %q", ErrInvalidID, raw)
	}

	return ID{Timestamp: ts, Feature: feature, Target: target, Suffix: suffix}, nil
}

func isHex(s string) bool {
	if len(s) != suffixLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// IDGenerator mints figure identifiers. The zero value is not usable; use
// NewIDGenerator.
type IDGenerator struct {
	now  func() time.Time
	rand io.Reader
}

// NewIDGenerator returns a generator backed by the wall clock and crypto/rand.
func NewIDGenerator() *IDGenerator {
	return NewIDGeneratorWith(nil, nil)
}

// NewIDGeneratorWith returns a generator using the given clock and randomness
// source. Nil arguments fall back to time.Now and crypto/rand.
func NewIDGeneratorWith(now func() time.Time, rand io.Reader) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now, rand: rand}
}

// New returns a fresh identifier for the feature/target pair. It never fails:
// if the configured randomness source errors, crypto/rand is used instead.
func (g *IDGenerator) New(feature, target string) ID {
	return ID{
		Timestamp: g.now().Unix(),
		Feature:   util.SanitizeKeyPart(feature),
		Target:    util.SanitizeKeyPart(target),
		Suffix:    g.suffix(),
	}
}

func (g *IDGenerator) suffix() string {
	if g.rand != nil {
		if u, err := uuid.NewRandomFromReader(g.rand); err == nil {
			return u.String()[:suffixLen]
		}
	}
	return uuid.NewString()[:suffixLen]
}
