package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictionRangeValues(t *testing.T) {
	cases := []struct {
		name    string
		rng     PredictionRange
		want    []float64
		wantErr bool
	}{
		{name: "ascending", rng: PredictionRange{Start: 0, Stop: 10, Step: 2}, want: []float64{0, 2, 4, 6, 8}},
		{name: "stop excluded", rng: PredictionRange{Start: 1000, Stop: 1300, Step: 100}, want: []float64{1000, 1100, 1200}},
		{name: "descending", rng: PredictionRange{Start: 5, Stop: 0, Step: -2}, want: []float64{5, 3, 1}},
		{name: "empty", rng: PredictionRange{Start: 3, Stop: 3, Step: 1}, wantErr: true},
		{name: "wrong direction", rng: PredictionRange{Start: 0, Stop: 10, Step: -1}, wantErr: true},
		{name: "zero step", rng: PredictionRange{Start: 0, Stop: 10, Step: 0}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.rng.Values()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInputContract)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFitLinearExactLine(t *testing.T) {
	records := []Record{
		{"x": 0, "y": 1},
		{"x": 1, "y": 3},
		{"x": 2, "y": 5},
	}
	fit, err := FitLinear(records, "x", "y", PredictionRange{Start: 0, Stop: 4, Step: 1})
	require.NoError(t, err)
	require.InDelta(t, 2.0, fit.Model.Slope, 1e-9)
	require.InDelta(t, 1.0, fit.Model.Intercept, 1e-9)
	require.Equal(t, []float64{0, 1, 2, 3}, fit.PredictX)
	require.InDeltaSlice(t, []float64{1, 3, 5, 7}, fit.Predictions, 1e-9)
}

func TestFitLinearConstantFeature(t *testing.T) {
	records := []Record{
		{"x": 4, "y": 10},
		{"x": 4, "y": 20},
	}
	fit, err := FitLinear(records, "x", "y", PredictionRange{Start: 0, Stop: 2, Step: 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, fit.Model.Slope)
	require.InDelta(t, 15.0, fit.Model.Intercept, 1e-9)
}

func TestFitLinearUsesEveryRecord(t *testing.T) {
	records := sampleRecords()
	fit, err := FitLinear(records, "years_of_experience", "salary", PredictionRange{Start: 0, Stop: 20, Step: 2})
	require.NoError(t, err)
	require.Len(t, fit.X, len(records))
	require.Len(t, fit.Predictions, 10)
	require.Greater(t, fit.Model.Slope, 0.0)
}

func TestFitLinearEmptyRecords(t *testing.T) {
	_, err := FitLinear(nil, "x", "y", PredictionRange{Start: 0, Stop: 2, Step: 1})
	require.ErrorIs(t, err, ErrInputContract)
}
