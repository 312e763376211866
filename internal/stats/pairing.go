package stats

import (
	"fmt"
	"strings"

	"jobboard-backend/internal/analysis"
)

// Pairing is one feature/target combination to fit and render.
type Pairing struct {
	Name         string                    `koanf:"name" json:"name"`
	Kind         analysis.Kind             `koanf:"kind" json:"kind"`
	Feature      string                    `koanf:"feature" json:"feature"`
	FeatureLabel string                    `koanf:"feature_label" json:"feature_label"`
	Target       string                    `koanf:"target" json:"target"`
	TargetLabel  string                    `koanf:"target_label" json:"target_label,omitempty"`
	Range        *analysis.PredictionRange `koanf:"range" json:"range,omitempty"`
}

// Validate checks that the pairing can be dispatched.
func (p Pairing) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidPairing, p.label(), p.Kind)
	}
	if strings.TrimSpace(p.Feature) == "" || strings.TrimSpace(p.Target) == "" {
		return fmt.Errorf("%w: %s: feature and target are required", ErrInvalidPairing, p.label())
	}
	if p.Kind == analysis.LinearRegression {
		if p.Range == nil {
			return fmt.Errorf("%w: %s: linear regression needs a range", ErrInvalidPairing, p.label())
		}
		if p.Range.Step == 0 {
			return fmt.Errorf("%w: %s: range step must not be zero", ErrInvalidPairing, p.label())
		}
	}
	return nil
}

func (p Pairing) label() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%s(%s->%s)", p.Kind, p.Feature, p.Target)
}

// DefaultCatalog lists the built-in pairings over application fields.
var DefaultCatalog = []Pairing{
	{
		Name:         "experience_salary_tree",
		Kind:         analysis.RegressionTree,
		Feature:      "years_of_experience",
		FeatureLabel: "Years of Experience",
		Target:       "salary",
	},
	{
		Name:         "salary_experience_tree",
		Kind:         analysis.RegressionTree,
		Feature:      "salary",
		FeatureLabel: "Salary",
		Target:       "years_of_experience",
	},
	{
		Name:         "diploma_experience_tree",
		Kind:         analysis.RegressionTree,
		Feature:      "has_diploma",
		FeatureLabel: "Has Diploma",
		Target:       "years_of_experience",
	},
	{
		Name:         "diploma_salary_tree",
		Kind:         analysis.RegressionTree,
		Feature:      "has_diploma",
		FeatureLabel: "Has Diploma",
		Target:       "salary",
	},
	{
		Name:         "experience_diploma_classifier",
		Kind:         analysis.ClassificationTree,
		Feature:      "years_of_experience",
		FeatureLabel: "Years of Experience",
		Target:       "has_diploma",
	},
	{
		Name:         "salary_diploma_classifier",
		Kind:         analysis.ClassificationTree,
		Feature:      "salary",
		FeatureLabel: "Salary",
		Target:       "has_diploma",
	},
	{
		Name:         "experience_salary_linear",
		Kind:         analysis.LinearRegression,
		Feature:      "years_of_experience",
		FeatureLabel: "Years of Experience",
		Target:       "salary",
		TargetLabel:  "Salary",
		Range:        &analysis.PredictionRange{Start: 0, Stop: 20, Step: 2},
	},
	{
		Name:         "salary_experience_linear",
		Kind:         analysis.LinearRegression,
		Feature:      "salary",
		FeatureLabel: "Salary",
		Target:       "years_of_experience",
		TargetLabel:  "Years of Experience",
		Range:        &analysis.PredictionRange{Start: 1000, Stop: 5000, Step: 100},
	},
}

// DefaultPairings is what runs when nothing is configured: a single
// regression tree of salary on years of experience.
func DefaultPairings() []Pairing {
	return []Pairing{DefaultCatalog[0]}
}

// Preset returns the catalog entry with the given name.
func Preset(name string) (Pairing, bool) {
	for _, p := range DefaultCatalog {
		if p.Name == name {
			return p, true
		}
	}
	return Pairing{}, false
}
