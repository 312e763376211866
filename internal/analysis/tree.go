package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Growth limits shared by both tree kinds.
const (
	MaxDepth        = 3
	MinSamplesSplit = 2
	MinSamplesLeaf  = 1
)

// Node is a binary split on the single feature, or a leaf when Left is nil.
// Samples on the left satisfy x <= Threshold.
type Node struct {
	Threshold float64
	Left      *Node
	Right     *Node
	Depth     int
	Samples   int
	Impurity  float64
	// Value is the mean target for regression nodes.
	Value float64
	// Counts holds per-class sample counts indexed like Tree.Classes.
	Counts []int
	Class  string
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

// Tree is a fitted CART model over one feature.
type Tree struct {
	Kind    Kind
	Root    *Node
	Classes []string
	Samples int
	// HeldOut is the index of the input record left out of training.
	HeldOut int
}

// Leaf returns the leaf x falls into.
func (t *Tree) Leaf(x float64) *Node {
	n := t.Root
	for !n.IsLeaf() {
		if x <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// Predict returns the regression estimate for x.
func (t *Tree) Predict(x float64) float64 {
	return t.Leaf(x).Value
}

// PredictClass returns the majority class of the leaf x falls into.
func (t *Tree) PredictClass(x float64) string {
	return t.Leaf(x).Class
}

// Depth returns the depth of the deepest leaf, 0 for a single leaf.
func (t *Tree) Depth() int {
	var walk func(*Node) int
	walk = func(n *Node) int {
		if n.IsLeaf() {
			return n.Depth
		}
		return max(walk(n.Left), walk(n.Right))
	}
	return walk(t.Root)
}

// Leaves returns leaves left to right.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			out = append(out, n)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.Root)
	return out
}

// FitRegressionTree extracts feature/target, holds out one record and fits a
// CART regressor on the rest.
func FitRegressionTree(records []Record, feature, target string) (*Tree, error) {
	ds, err := numericColumns(records, feature, target)
	if err != nil {
		return nil, err
	}
	rows, heldOut, err := trainingRows(ds.len())
	if err != nil {
		return nil, err
	}
	train := ds.subset(rows)
	order := sortedOrder(train.x)
	root := growRegression(train, order, 0)
	return &Tree{Kind: RegressionTree, Root: root, Samples: train.len(), HeldOut: heldOut}, nil
}

// FitClassificationTree is FitRegressionTree for a categorical target, using
// Gini impurity.
func FitClassificationTree(records []Record, feature, target string) (*Tree, error) {
	ds, err := labelColumns(records, feature, target)
	if err != nil {
		return nil, err
	}
	rows, heldOut, err := trainingRows(ds.len())
	if err != nil {
		return nil, err
	}
	train := ds.subset(rows)

	classes := distinct(train.labels)
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, train.len())
	for i, l := range train.labels {
		y[i] = index[l]
	}

	order := sortedOrder(train.x)
	root := growClassifier(train.x, y, classes, order, 0)
	return &Tree{Kind: ClassificationTree, Root: root, Classes: classes, Samples: train.len(), HeldOut: heldOut}, nil
}

func sortedOrder(x []float64) []int {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })
	return order
}

func distinct(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	var out []string
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// splittable reports whether a node at depth with n samples may be split.
func splittable(depth, n int, impurity float64) bool {
	return depth < MaxDepth && n >= MinSamplesSplit && n >= 2*MinSamplesLeaf && impurity > 1e-12
}

// bestCut scans the cut positions of order (sorted by x) and returns the
// position i such that order[:i] goes left, choosing the lowest weighted
// child impurity. The first minimum wins ties. ok is false when every x is
// equal.
func bestCut(x []float64, order []int, childImpurity func(i int) float64) (cut int, ok bool) {
	best := math.Inf(1)
	for i := MinSamplesLeaf; i <= len(order)-MinSamplesLeaf; i++ {
		if x[order[i-1]] == x[order[i]] {
			continue
		}
		if imp := childImpurity(i); imp < best-1e-12 {
			best, cut, ok = imp, i, true
		}
	}
	return cut, ok
}

func growRegression(ds dataset, order []int, depth int) *Node {
	ys := make([]float64, len(order))
	for i, r := range order {
		ys[i] = ds.y[r]
	}
	mean, variance := stat.PopMeanVariance(ys, nil)
	node := &Node{Depth: depth, Samples: len(order), Impurity: variance, Value: mean}
	if !splittable(depth, len(order), variance) {
		return node
	}

	// Prefix sums give each side's variance in O(1) per cut.
	sum := make([]float64, len(ys)+1)
	sq := make([]float64, len(ys)+1)
	floats.CumSum(sum[1:], ys)
	for i, v := range ys {
		sq[i+1] = sq[i] + v*v
	}
	total := float64(len(ys))
	sideVar := func(s, q, n float64) float64 {
		m := s / n
		return math.Max(q/n-m*m, 0)
	}
	cut, ok := bestCut(ds.x, order, func(i int) float64 {
		nl, nr := float64(i), total-float64(i)
		left := sideVar(sum[i], sq[i], nl)
		right := sideVar(sum[len(ys)]-sum[i], sq[len(ys)]-sq[i], nr)
		return (nl*left + nr*right) / total
	})
	if !ok {
		return node
	}

	node.Threshold = (ds.x[order[cut-1]] + ds.x[order[cut]]) / 2
	node.Left = growRegression(ds, order[:cut], depth+1)
	node.Right = growRegression(ds, order[cut:], depth+1)
	return node
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		g -= p * p
	}
	return g
}

// majority picks the most frequent class; classes are sorted so the lowest
// index wins ties.
func majority(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

func growClassifier(x []float64, y []int, classes []string, order []int, depth int) *Node {
	counts := make([]int, len(classes))
	for _, r := range order {
		counts[y[r]]++
	}
	impurity := gini(counts, len(order))
	node := &Node{
		Depth:    depth,
		Samples:  len(order),
		Impurity: impurity,
		Counts:   counts,
		Class:    classes[majority(counts)],
	}
	if !splittable(depth, len(order), impurity) {
		return node
	}

	// Running left counts per cut position.
	prefix := make([][]int, len(order)+1)
	prefix[0] = make([]int, len(classes))
	for i, r := range order {
		next := make([]int, len(classes))
		copy(next, prefix[i])
		next[y[r]]++
		prefix[i+1] = next
	}
	total := len(order)
	right := make([]int, len(classes))
	cut, ok := bestCut(x, order, func(i int) float64 {
		for k := range right {
			right[k] = counts[k] - prefix[i][k]
		}
		nl, nr := i, total-i
		return (float64(nl)*gini(prefix[i], nl) + float64(nr)*gini(right, nr)) / float64(total)
	})
	if !ok {
		return node
	}

	node.Threshold = (x[order[cut-1]] + x[order[cut]]) / 2
	node.Left = growClassifier(x, y, classes, order[:cut], depth+1)
	node.Right = growClassifier(x, y, classes, order[cut:], depth+1)
	return node
}
