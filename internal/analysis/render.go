package analysis

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Figure sizes. Trees need room for several levels of boxes.
var (
	treeWidth    = 16 * vg.Inch
	treeHeight   = 10 * vg.Inch
	linearWidth  = 6.4 * vg.Inch
	linearHeight = 4.8 * vg.Inch
)

func encodePNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("png canvas: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
