package analysis

import (
	"context"
	"sync"

	"jobboard-backend/internal/figures"
)

// sampleRecords is a small applicant pool with a clear experience/salary trend.
func sampleRecords() []Record {
	rows := []struct {
		salary  int
		years   int
		diploma bool
	}{
		{1000, 0, false},
		{1500, 1, false},
		{1700, 1, true},
		{1200, 0, false},
		{1150, 0, false},
		{1800, 3, true},
		{1550, 1, false},
		{1750, 2, false},
		{2200, 4, true},
		{2050, 5, true},
		{3000, 5, true},
		{4000, 10, true},
		{3500, 8, true},
		{4500, 10, true},
		{4200, 12, true},
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = Record{
			"name":                "candidate",
			"salary":              r.salary,
			"years_of_experience": r.years,
			"has_diploma":         r.diploma,
		}
	}
	return out
}

type memorySaver struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func newMemorySaver() *memorySaver {
	return &memorySaver{saved: make(map[string][]byte)}
}

func (m *memorySaver) Save(_ context.Context, id figures.ID, png []byte) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[id.String()] = png
	return nil
}

func (m *memorySaver) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}
