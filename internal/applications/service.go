package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/validate"
)

// JobLookup resolves the job an application targets.
type JobLookup interface {
	GetByID(ctx context.Context, id string) (jobs.Job, error)
}

// Service contains business logic for applications.
type Service struct {
	Repo Repo
	Jobs JobLookup
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, jobLookup JobLookup) *Service {
	return &Service{Repo: repo, Jobs: jobLookup, Now: time.Now}
}

// Apply validates the request and stores an application for jobID.
func (s *Service) Apply(ctx context.Context, jobID string, req CreateApplicationRequest) (Application, error) {
	req.normalize()
	if err := validate.Struct(req); err != nil {
		return Application{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if _, err := s.Jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		return Application{}, fmt.Errorf("lookup job: %w", err)
	}

	app := Application{
		ID:                uuid.NewString(),
		JobID:             jobID,
		Name:              req.Name,
		YearsOfExperience: *req.YearsOfExperience,
		HasDiploma:        *req.HasDiploma,
		Salary:            *req.Salary,
		Email:             req.Email,
		CVURL:             req.CVURL,
		CreatedAt:         s.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// ListByJob returns the applications for a job, oldest first.
func (s *Service) ListByJob(ctx context.Context, jobID string) ([]Application, error) {
	return s.Repo.ListByJob(ctx, jobID)
}
