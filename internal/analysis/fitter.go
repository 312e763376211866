package analysis

import (
	"context"
	"fmt"
	"time"

	"jobboard-backend/internal/figures"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
)

// IDSource mints figure identifiers.
type IDSource interface {
	New(feature, target string) figures.ID
}

// ArtifactSaver persists rendered PNGs.
type ArtifactSaver interface {
	Save(ctx context.Context, id figures.ID, png []byte) error
}

// TreeSpec selects the columns for a tree fit.
type TreeSpec struct {
	Feature      string
	FeatureLabel string
	Target       string
}

// LinearSpec selects the columns, axis labels and prediction range for a
// straight-line fit.
type LinearSpec struct {
	Feature      string
	FeatureLabel string
	Target       string
	TargetLabel  string
	Range        PredictionRange
}

// Fitter fits a model, renders it and stores the image, returning the
// figure identifier. Nothing is stored when fitting or rendering fails.
type Fitter struct {
	IDs       IDSource
	Artifacts ArtifactSaver
}

// NewFitter constructs a Fitter.
func NewFitter(ids IDSource, artifacts ArtifactSaver) *Fitter {
	return &Fitter{IDs: ids, Artifacts: artifacts}
}

// FitAndRenderTree fits a regression tree of target on feature.
func (f *Fitter) FitAndRenderTree(ctx context.Context, records []Record, spec TreeSpec) (string, error) {
	return f.run(ctx, RegressionTree, spec.Feature, spec.Target, len(records), func() ([]byte, error) {
		tree, err := FitRegressionTree(records, spec.Feature, spec.Target)
		if err != nil {
			return nil, err
		}
		return RenderTree(tree, spec.FeatureLabel)
	})
}

// FitAndRenderClassifier fits a classification tree of target on feature.
func (f *Fitter) FitAndRenderClassifier(ctx context.Context, records []Record, spec TreeSpec) (string, error) {
	return f.run(ctx, ClassificationTree, spec.Feature, spec.Target, len(records), func() ([]byte, error) {
		tree, err := FitClassificationTree(records, spec.Feature, spec.Target)
		if err != nil {
			return nil, err
		}
		return RenderTree(tree, spec.FeatureLabel)
	})
}

// FitAndRenderLinear fits a least-squares line of target on feature.
func (f *Fitter) FitAndRenderLinear(ctx context.Context, records []Record, spec LinearSpec) (string, error) {
	return f.run(ctx, LinearRegression, spec.Feature, spec.Target, len(records), func() ([]byte, error) {
		fit, err := FitLinear(records, spec.Feature, spec.Target, spec.Range)
		if err != nil {
			return nil, err
		}
		return RenderLinear(fit, spec.FeatureLabel, spec.TargetLabel)
	})
}

func (f *Fitter) run(ctx context.Context, kind Kind, feature, target string, rows int, render func() ([]byte, error)) (id string, err error) {
	started := time.Now()
	defer func() { metrics.ObserveFigure(string(kind), started, err) }()

	png, err := render()
	if err != nil {
		return "", fmt.Errorf("%s %s->%s: %w", kind, feature, target, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	figID := f.IDs.New(feature, target)
	if err := f.Artifacts.Save(ctx, figID, png); err != nil {
		return "", err
	}

	telemetry.Info("figure.rendered", map[string]any{
		"kind":        string(kind),
		"feature":     feature,
		"target":      target,
		"rows":        rows,
		"figure_id":   figID.String(),
		"bytes":       len(png),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return figID.String(), nil
}
