package analysis

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor  = color.RGBA{R: 255, A: 255}
)

// RenderLinear draws the original points and the fitted line with a legend.
func RenderLinear(fit *LinearFit, featureLabel, targetLabel string) ([]byte, error) {
	p := plot.New()
	p.X.Label.Text = featureLabel
	p.Y.Label.Text = targetLabel
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(fit.X))
	for i := range fit.X {
		points[i] = plotter.XY{X: fit.X[i], Y: fit.Y[i]}
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{Color: pointColor, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}

	line := make(plotter.XYs, len(fit.PredictX))
	for i := range fit.PredictX {
		line[i] = plotter.XY{X: fit.PredictX[i], Y: fit.Predictions[i]}
	}
	fitted, err := plotter.NewLine(line)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	fitted.LineStyle.Color = lineColor
	fitted.LineStyle.Width = vg.Points(1.5)

	p.Add(scatter, fitted)
	p.Legend.Add("Original Data", scatter)
	p.Legend.Add("Linear Regression Line", fitted)
	p.Legend.Top = true

	return encodePNG(p, linearWidth, linearHeight)
}
