package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, title, company, workspace_type, location, type, description, email, created_at`

// Create inserts a job.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (` + jobColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Company,
		job.WorkspaceType,
		job.Location,
		job.Type,
		job.Description,
		job.Email,
		job.CreatedAt,
	)
	return err
}

// GetByID returns a job or ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// List returns all jobs, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.WorkspaceType,
		&job.Location,
		&job.Type,
		&job.Description,
		&job.Email,
		&job.CreatedAt,
	)
	return job, err
}
