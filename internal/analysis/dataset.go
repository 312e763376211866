package analysis

import (
	"math/rand/v2"
)

const splitSeed = 0

type dataset struct {
	x      []float64
	y      []float64
	labels []string
}

func (d dataset) len() int { return len(d.x) }

func numericColumns(records []Record, feature, target string) (dataset, error) {
	ds := dataset{x: make([]float64, len(records)), y: make([]float64, len(records))}
	for i, rec := range records {
		x, err := rec.number(feature, i)
		if err != nil {
			return dataset{}, err
		}
		y, err := rec.number(target, i)
		if err != nil {
			return dataset{}, err
		}
		ds.x[i], ds.y[i] = x, y
	}
	return ds, nil
}

func labelColumns(records []Record, feature, target string) (dataset, error) {
	ds := dataset{x: make([]float64, len(records)), labels: make([]string, len(records))}
	for i, rec := range records {
		x, err := rec.number(feature, i)
		if err != nil {
			return dataset{}, err
		}
		label, err := rec.label(target, i)
		if err != nil {
			return dataset{}, err
		}
		ds.x[i], ds.labels[i] = x, label
	}
	return ds, nil
}

// trainingRows drops one row chosen by a permutation with a fixed seed, so
// the same input always yields the same training set.
func trainingRows(n int) ([]int, int, error) {
	if n < 2 {
		return nil, -1, inputErr("", -1, "at least 2 records are required to hold one out")
	}
	rng := rand.New(rand.NewPCG(splitSeed, splitSeed))
	perm := rng.Perm(n)
	return perm[1:], perm[0], nil
}

func (d dataset) subset(rows []int) dataset {
	out := dataset{x: make([]float64, len(rows))}
	if d.y != nil {
		out.y = make([]float64, len(rows))
	}
	if d.labels != nil {
		out.labels = make([]string, len(rows))
	}
	for i, r := range rows {
		out.x[i] = d.x[r]
		if d.y != nil {
			out.y[i] = d.y[r]
		}
		if d.labels != nil {
			out.labels[i] = d.labels[r]
		}
	}
	return out
}
