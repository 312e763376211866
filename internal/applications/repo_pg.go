package applications

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an application.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (
    id,
    job_id,
    name,
    years_of_experience,
    has_diploma,
    salary,
    email,
    cv_url,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.JobID,
		app.Name,
		app.YearsOfExperience,
		app.HasDiploma,
		app.Salary,
		app.Email,
		app.CVURL,
		app.CreatedAt,
	)
	return err
}

// ListByJob returns a job's applications ordered by creation time, then id.
func (r *PGRepo) ListByJob(ctx context.Context, jobID string) ([]Application, error) {
	const query = `
SELECT id, job_id, name, years_of_experience, has_diploma, salary, email, cv_url, created_at
FROM applications
WHERE job_id = $1
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		var app Application
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.Name,
			&app.YearsOfExperience,
			&app.HasDiploma,
			&app.Salary,
			&app.Email,
			&app.CVURL,
			&app.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}
