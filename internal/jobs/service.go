package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/shared/validate"
)

// Service contains business logic for jobs.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Create validates and stores a new job.
func (s *Service) Create(ctx context.Context, req CreateJobRequest) (Job, error) {
	req.normalize()
	if err := validate.Struct(req); err != nil {
		return Job{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	job := Job{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Company:       req.Company,
		WorkspaceType: req.WorkspaceType,
		Location:      req.Location,
		Type:          req.Type,
		Description:   req.Description,
		Email:         req.Email,
		CreatedAt:     s.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Get returns a job by id.
func (s *Service) Get(ctx context.Context, id string) (Job, error) {
	if id == "" {
		return Job{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all jobs, newest first.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.Repo.List(ctx)
}
