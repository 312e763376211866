package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LinearModel is y = Intercept + Slope*x.
type LinearModel struct {
	Intercept float64
	Slope     float64
}

// Predict evaluates the line at x.
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// PredictionRange enumerates Start, Start+Step, ... stopping before Stop.
// Step may be negative; it may not be zero.
type PredictionRange struct {
	Start int `json:"start" koanf:"start"`
	Stop  int `json:"stop" koanf:"stop"`
	Step  int `json:"step" koanf:"step"`
}

// Values returns the sampled points, or an input-contract error when the
// range is empty or the step is zero.
func (r PredictionRange) Values() ([]float64, error) {
	if r.Step == 0 {
		return nil, inputErr("range", -1, "step must not be zero")
	}
	var out []float64
	for v := r.Start; (r.Step > 0 && v < r.Stop) || (r.Step < 0 && v > r.Stop); v += r.Step {
		out = append(out, float64(v))
	}
	if len(out) == 0 {
		return nil, inputErr("range", -1, fmt.Sprintf("range(%d, %d, %d) is empty", r.Start, r.Stop, r.Step))
	}
	return out, nil
}

// LinearFit is a fitted line together with the data it was fitted on.
type LinearFit struct {
	Model       LinearModel
	X, Y        []float64
	PredictX    []float64
	Predictions []float64
}

// FitLinear fits an ordinary least squares line over every record and
// evaluates it on the prediction range.
func FitLinear(records []Record, feature, target string, rng PredictionRange) (*LinearFit, error) {
	if len(records) == 0 {
		return nil, inputErr("", -1, "at least 1 record is required")
	}
	ds, err := numericColumns(records, feature, target)
	if err != nil {
		return nil, err
	}
	xs, err := rng.Values()
	if err != nil {
		return nil, err
	}

	var model LinearModel
	if floats.Min(ds.x) == floats.Max(ds.x) {
		model = LinearModel{Intercept: stat.Mean(ds.y, nil)}
	} else {
		alpha, beta := stat.LinearRegression(ds.x, ds.y, nil, false)
		model = LinearModel{Intercept: alpha, Slope: beta}
	}

	preds := make([]float64, len(xs))
	for i, x := range xs {
		preds[i] = model.Predict(x)
	}
	return &LinearFit{Model: model, X: ds.x, Y: ds.y, PredictX: xs, Predictions: preds}, nil
}
