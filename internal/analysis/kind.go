package analysis

// Kind names a fitting procedure.
type Kind string

const (
	RegressionTree     Kind = "regression_tree"
	ClassificationTree Kind = "classification_tree"
	LinearRegression   Kind = "linear_regression"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case RegressionTree, ClassificationTree, LinearRegression:
		return true
	}
	return false
}
