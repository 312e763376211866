package analysis

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	regressionFill = color.RGBA{R: 229, G: 129, B: 57, A: 255}
	boxPadding     = vg.Points(6)
	cornerRadius   = vg.Points(6)
)

// RenderTree draws t as a node diagram and returns PNG bytes.
func RenderTree(t *Tree, featureLabel string) ([]byte, error) {
	p := plot.New()
	p.HideAxes()
	p.Add(newTreeDiagram(t, featureLabel, p.TextHandler))
	return encodePNG(p, treeWidth, treeHeight)
}

type treeDiagram struct {
	tree         *Tree
	featureLabel string
	style        text.Style
	lo, hi       float64
}

func newTreeDiagram(t *Tree, featureLabel string, handler text.Handler) *treeDiagram {
	d := &treeDiagram{
		tree:         t,
		featureLabel: featureLabel,
		style: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 11),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: handler,
		},
		lo: math.Inf(1),
		hi: math.Inf(-1),
	}
	walk(t.Root, func(n *Node) {
		d.lo = math.Min(d.lo, n.Value)
		d.hi = math.Max(d.hi, n.Value)
	})
	return d
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	walk(n.Left, fn)
	walk(n.Right, fn)
}

type placed struct {
	center vg.Point
	w, h   vg.Length
	label  string
}

// layout spreads leaves evenly left to right and centers each parent over
// its children. Rows are spaced by depth.
func (d *treeDiagram) layout(c draw.Canvas) map[*Node]*placed {
	leaves := d.tree.Leaves()
	levels := d.tree.Depth() + 1
	slot := make(map[*Node]float64, len(leaves))
	for i, leaf := range leaves {
		slot[leaf] = (float64(i) + 0.5) / float64(len(leaves))
	}
	var xOf func(*Node) float64
	xOf = func(n *Node) float64 {
		if n.IsLeaf() {
			return slot[n]
		}
		return (xOf(n.Left) + xOf(n.Right)) / 2
	}

	out := make(map[*Node]*placed)
	walk(d.tree.Root, func(n *Node) {
		label := strings.Join(d.lines(n), "\n")
		out[n] = &placed{
			center: vg.Point{
				X: c.X(xOf(n)),
				Y: c.Y(1 - (float64(n.Depth)+0.5)/float64(levels)),
			},
			w:     d.style.Width(label) + 2*boxPadding,
			h:     d.style.Height(label) + 2*boxPadding,
			label: label,
		}
	})
	return out
}

// Plot implements plot.Plotter.
func (d *treeDiagram) Plot(c draw.Canvas, _ *plot.Plot) {
	boxes := d.layout(c)
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}

	walk(d.tree.Root, func(n *Node) {
		if n.IsLeaf() {
			return
		}
		from := boxes[n]
		for _, child := range []*Node{n.Left, n.Right} {
			to := boxes[child]
			c.StrokeLine2(edge,
				from.center.X, from.center.Y-from.h/2,
				to.center.X, to.center.Y+to.h/2)
		}
	})

	if root := d.tree.Root; !root.IsLeaf() {
		d.edgeLabel(c, boxes[root], boxes[root.Left], "True")
		d.edgeLabel(c, boxes[root], boxes[root.Right], "False")
	}

	walk(d.tree.Root, func(n *Node) {
		b := boxes[n]
		outline := roundedRect(b.center, b.w, b.h, cornerRadius)
		c.FillPolygon(d.fill(n), outline)
		c.StrokeLines(edge, append(outline, outline[0]))
		c.FillText(d.style, b.center, b.label)
	})
}

func (d *treeDiagram) edgeLabel(c draw.Canvas, from, to *placed, label string) {
	sty := d.style
	sty.Font.Size = 10
	mid := vg.Point{
		X: (from.center.X + to.center.X) / 2,
		Y: (from.center.Y - from.h/2 + to.center.Y + to.h/2) / 2,
	}
	c.FillText(sty, mid, label)
}

func (d *treeDiagram) lines(n *Node) []string {
	var lines []string
	if !n.IsLeaf() {
		lines = append(lines, fmt.Sprintf("%s <= %s", d.featureLabel, formatNum(n.Threshold)))
	}
	switch d.tree.Kind {
	case ClassificationTree:
		counts := make([]string, len(n.Counts))
		for i, v := range n.Counts {
			counts[i] = strconv.Itoa(v)
		}
		lines = append(lines,
			"gini = "+formatNum(n.Impurity),
			"samples = "+strconv.Itoa(n.Samples),
			"value = ["+strings.Join(counts, ", ")+"]",
			"class = "+n.Class,
		)
	default:
		share := 100 * float64(n.Samples) / float64(d.tree.Samples)
		lines = append(lines,
			fmt.Sprintf("samples = %.1f%%", share),
			"value = "+formatNum(n.Value),
		)
	}
	return lines
}

// fill shades regression nodes by value and classification nodes by class,
// with intensity growing with purity.
func (d *treeDiagram) fill(n *Node) color.Color {
	if d.tree.Kind == ClassificationTree {
		return blend(classColor(n, d.tree.Classes), purity(n.Counts, n.Samples))
	}
	alpha := 0.0
	if d.hi > d.lo {
		alpha = (n.Value - d.lo) / (d.hi - d.lo)
	}
	return blend(regressionFill, alpha)
}

func classColor(n *Node, classes []string) color.Color {
	for i, c := range classes {
		if c == n.Class {
			return plotutil.Color(i)
		}
	}
	return plotutil.Color(0)
}

// purity is 0 for an even split between the top two classes and 1 for a
// pure node.
func purity(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	first, second := 0, 0
	for _, c := range counts {
		switch {
		case c > first:
			first, second = c, first
		case c > second:
			second = c
		}
	}
	p1, p2 := float64(first)/float64(n), float64(second)/float64(n)
	if p2 >= 1 {
		return 0
	}
	return (p1 - p2) / (1 - p2)
}

func blend(c color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	r, g, b, _ := c.RGBA()
	mix := func(v uint32) uint8 {
		return uint8(math.Round(255 - alpha*(255-float64(v>>8))))
	}
	return color.RGBA{R: mix(r), G: mix(g), B: mix(b), A: 255}
}

// roundedRect approximates a rectangle with rounded corners centered on ctr.
func roundedRect(ctr vg.Point, w, h, r vg.Length) []vg.Point {
	r = vg.Length(math.Min(float64(r), math.Min(float64(w), float64(h))/2))
	corners := []struct {
		cx, cy vg.Length
		start  float64
	}{
		{ctr.X + w/2 - r, ctr.Y + h/2 - r, 0},
		{ctr.X - w/2 + r, ctr.Y + h/2 - r, math.Pi / 2},
		{ctr.X - w/2 + r, ctr.Y - h/2 + r, math.Pi},
		{ctr.X + w/2 - r, ctr.Y - h/2 + r, 3 * math.Pi / 2},
	}
	const steps = 4
	pts := make([]vg.Point, 0, len(corners)*(steps+1))
	for _, k := range corners {
		for i := 0; i <= steps; i++ {
			a := k.start + float64(i)*(math.Pi/2)/steps
			pts = append(pts, vg.Point{
				X: k.cx + r*vg.Length(math.Cos(a)),
				Y: k.cy + r*vg.Length(math.Sin(a)),
			})
		}
	}
	return pts
}

// formatNum prints up to three decimals without trailing zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
