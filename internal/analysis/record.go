package analysis

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is one application as seen by the fitters, keyed by JSON field name.
type Record map[string]any

func (r Record) number(field string, row int) (float64, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, inputErr(field, row, "missing")
	}
	var f float64
	switch n := v.(type) {
	case bool:
		if n {
			f = 1
		}
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, inputErr(field, row, "not numeric")
		}
		f = parsed
	default:
		return 0, inputErr(field, row, "not numeric")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, inputErr(field, row, "not finite")
	}
	return f, nil
}

// label returns the class label of a categorical target. Booleans render as
// "False"/"True", integers in decimal.
func (r Record) label(field string, row int) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", inputErr(field, row, "missing")
	}
	switch n := v.(type) {
	case bool:
		if n {
			return "True", nil
		}
		return "False", nil
	case string:
		if n == "" {
			return "", inputErr(field, row, "empty label")
		}
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
	}
	f, err := r.number(field, row)
	if err != nil {
		return "", err
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
