package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGrowRegressionSplitsAtMidpoint(t *testing.T) {
	ds := dataset{x: []float64{4, 1, 3, 2}, y: []float64{20, 10, 20, 10}}
	got := growRegression(ds, sortedOrder(ds.x), 0)

	want := &Node{
		Threshold: 2.5,
		Samples:   4,
		Impurity:  25,
		Value:     15,
		Left:      &Node{Depth: 1, Samples: 2, Value: 10},
		Right:     &Node{Depth: 1, Samples: 2, Value: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestGrowRegressionRespectsMaxDepth(t *testing.T) {
	var ds dataset
	for i := 1; i <= 40; i++ {
		ds.x = append(ds.x, float64(i))
		ds.y = append(ds.y, float64(i*i))
	}
	tree := &Tree{Kind: RegressionTree, Root: growRegression(ds, sortedOrder(ds.x), 0), Samples: ds.len()}

	require.Equal(t, MaxDepth, tree.Depth())
	require.LessOrEqual(t, len(tree.Leaves()), 1<<MaxDepth)
	total := 0
	for _, leaf := range tree.Leaves() {
		require.GreaterOrEqual(t, leaf.Samples, MinSamplesLeaf)
		total += leaf.Samples
	}
	require.Equal(t, ds.len(), total)
}

func TestGrowRegressionConstantFeatureIsLeaf(t *testing.T) {
	ds := dataset{x: []float64{1, 1, 1}, y: []float64{1, 2, 3}}
	root := growRegression(ds, sortedOrder(ds.x), 0)
	require.True(t, root.IsLeaf())
	require.InDelta(t, 2.0, root.Value, 1e-9)
}

func TestGrowClassifier(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []int{0, 0, 1, 1}
	classes := []string{"False", "True"}
	got := growClassifier(x, y, classes, sortedOrder(x), 0)

	want := &Node{
		Threshold: 2.5,
		Samples:   4,
		Impurity:  0.5,
		Counts:    []int{2, 2},
		Class:     "False",
		Left:      &Node{Depth: 1, Samples: 2, Counts: []int{2, 0}, Class: "False"},
		Right:     &Node{Depth: 1, Samples: 2, Counts: []int{0, 2}, Class: "True"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestMajorityTieBreaksOnFirstClass(t *testing.T) {
	require.Equal(t, 0, majority([]int{3, 3}))
	require.Equal(t, 1, majority([]int{1, 4, 4}))
}

func TestFitRegressionTreeHoldsOutOneRecord(t *testing.T) {
	records := sampleRecords()
	tree, err := FitRegressionTree(records, "years_of_experience", "salary")
	require.NoError(t, err)
	require.Equal(t, len(records)-1, tree.Samples)
	require.Equal(t, tree.Samples, tree.Root.Samples)
	require.GreaterOrEqual(t, tree.HeldOut, 0)
	require.Less(t, tree.HeldOut, len(records))
	require.LessOrEqual(t, tree.Depth(), MaxDepth)
}

func TestFitRegressionTreeDeterministic(t *testing.T) {
	records := sampleRecords()
	first, err := FitRegressionTree(records, "years_of_experience", "salary")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := FitRegressionTree(records, "years_of_experience", "salary")
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
		for _, rec := range records {
			x, err := rec.number("years_of_experience", 0)
			require.NoError(t, err)
			require.Equal(t, first.Predict(x), again.Predict(x))
		}
	}
}

func TestFitRegressionTreeBooleanFeature(t *testing.T) {
	tree, err := FitRegressionTree(sampleRecords(), "has_diploma", "salary")
	require.NoError(t, err)
	require.False(t, tree.Root.IsLeaf())
	require.Equal(t, 0.5, tree.Root.Threshold)
	require.Less(t, tree.Predict(0), tree.Predict(1))
}

func TestFitRegressionTreeInputContract(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
		field   string
		row     int
	}{
		{name: "empty", records: nil, row: -1},
		{name: "single", records: []Record{{"years_of_experience": 1, "salary": 10}}, row: -1},
		{
			name:    "missing target",
			records: []Record{{"years_of_experience": 1, "salary": 10}, {"years_of_experience": 2}},
			field:   "salary",
			row:     1,
		},
		{
			name:    "non numeric feature",
			records: []Record{{"years_of_experience": "two", "salary": 10}, {"years_of_experience": 2, "salary": 5}},
			field:   "years_of_experience",
			row:     0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FitRegressionTree(tc.records, "years_of_experience", "salary")
			require.ErrorIs(t, err, ErrInputContract)
			var inErr *InputError
			require.True(t, errors.As(err, &inErr))
			require.Equal(t, tc.field, inErr.Field)
			require.Equal(t, tc.row, inErr.Row)
		})
	}
}

func TestFitClassificationTree(t *testing.T) {
	tree, err := FitClassificationTree(sampleRecords(), "salary", "has_diploma")
	require.NoError(t, err)
	require.Equal(t, []string{"False", "True"}, tree.Classes)
	require.Equal(t, "False", tree.PredictClass(1000))
	require.Equal(t, "True", tree.PredictClass(4500))
	for _, leaf := range tree.Leaves() {
		require.Len(t, leaf.Counts, 2)
		require.Equal(t, leaf.Samples, leaf.Counts[0]+leaf.Counts[1])
	}
}

func TestRecordLabel(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{true, "True"},
		{false, "False"},
		{3, "3"},
		{int64(12), "12"},
		{2.0, "2"},
		{2.5, "2.5"},
		{"Remote", "Remote"},
	}
	for _, tc := range cases {
		got, err := Record{"v": tc.value}.label("v", 0)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestTrainingRowsStable(t *testing.T) {
	a, heldA, err := trainingRows(10)
	require.NoError(t, err)
	b, heldB, err := trainingRows(10)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, heldA, heldB)
	require.Len(t, a, 9)
	require.NotContains(t, a, heldA)
}
