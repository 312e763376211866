package stats

import (
	"context"
	"fmt"

	"jobboard-backend/internal/analysis"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/jobs"
)

// JobReader loads a job by id.
type JobReader interface {
	GetByID(ctx context.Context, id string) (jobs.Job, error)
}

// ApplicationLister loads a job's applications in creation order.
type ApplicationLister interface {
	ListByJob(ctx context.Context, jobID string) ([]applications.Application, error)
}

// FigureFitter fits and renders one figure per call, returning its id.
type FigureFitter interface {
	FitAndRenderTree(ctx context.Context, records []analysis.Record, spec analysis.TreeSpec) (string, error)
	FitAndRenderClassifier(ctx context.Context, records []analysis.Record, spec analysis.TreeSpec) (string, error)
	FitAndRenderLinear(ctx context.Context, records []analysis.Record, spec analysis.LinearSpec) (string, error)
}

// Result is the payload of GET /jobs/:id/stats.
type Result struct {
	Job          jobs.Job                   `json:"job"`
	Applications []applications.Application `json:"applications"`
	Figures      []string                   `json:"figures"`
}

// Service runs the configured pairings over a job's applications.
type Service struct {
	Jobs         JobReader
	Applications ApplicationLister
	Fitter       FigureFitter
	Pairings     []Pairing
}

// NewService constructs a Service. Empty pairings fall back to
// DefaultPairings.
func NewService(jobReader JobReader, apps ApplicationLister, fitter FigureFitter, pairings []Pairing) *Service {
	if len(pairings) == 0 {
		pairings = DefaultPairings()
	}
	return &Service{Jobs: jobReader, Applications: apps, Fitter: fitter, Pairings: pairings}
}

// ForJob loads the job and its applications, then computes statistics.
// A missing job yields jobs.ErrNotFound before any fitting happens.
func (s *Service) ForJob(ctx context.Context, jobID string) (Result, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return Result{}, err
	}
	apps, err := s.Applications.ListByJob(ctx, jobID)
	if err != nil {
		return Result{}, fmt.Errorf("list applications: %w", err)
	}
	return s.ComputeJobStatistics(ctx, job, apps)
}

// ComputeJobStatistics runs every pairing in order and returns the figure
// ids alongside the unmodified job and applications. The first failure
// aborts the call; no partial result is returned.
func (s *Service) ComputeJobStatistics(ctx context.Context, job jobs.Job, apps []applications.Application) (Result, error) {
	if apps == nil {
		apps = []applications.Application{}
	}
	records := ToRecords(apps)

	figures := make([]string, 0, len(s.Pairings))
	for _, p := range s.Pairings {
		id, err := s.run(ctx, records, p)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s: %w", ErrFitFailed, p.label(), err)
		}
		figures = append(figures, id)
	}

	return Result{Job: job, Applications: apps, Figures: figures}, nil
}

func (s *Service) run(ctx context.Context, records []analysis.Record, p Pairing) (string, error) {
	switch p.Kind {
	case analysis.RegressionTree:
		return s.Fitter.FitAndRenderTree(ctx, records, p.treeSpec())
	case analysis.ClassificationTree:
		return s.Fitter.FitAndRenderClassifier(ctx, records, p.treeSpec())
	case analysis.LinearRegression:
		if p.Range == nil {
			return "", fmt.Errorf("%w: missing range", ErrInvalidPairing)
		}
		return s.Fitter.FitAndRenderLinear(ctx, records, analysis.LinearSpec{
			Feature:      p.Feature,
			FeatureLabel: p.FeatureLabel,
			Target:       p.Target,
			TargetLabel:  p.TargetLabel,
			Range:        *p.Range,
		})
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidPairing, p.Kind)
	}
}

func (p Pairing) treeSpec() analysis.TreeSpec {
	return analysis.TreeSpec{Feature: p.Feature, FeatureLabel: p.FeatureLabel, Target: p.Target}
}

// ToRecords exposes applications to the fitters under their JSON field names.
func ToRecords(apps []applications.Application) []analysis.Record {
	out := make([]analysis.Record, len(apps))
	for i, a := range apps {
		out[i] = analysis.Record{
			"name":                a.Name,
			"years_of_experience": a.YearsOfExperience,
			"has_diploma":         a.HasDiploma,
			"salary":              a.Salary,
			"email":               a.Email,
			"cv_url":              a.CVURL,
		}
	}
	return out
}
