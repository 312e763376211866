package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	// ListByJob returns a job's applications ordered by creation time, then id.
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
}
