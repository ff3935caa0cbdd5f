package model

import (
	"math"

	"veridect/types"
)

// Linear is a binary logistic-regression head over the TF-IDF
// features. Weights point toward the FAKE class (index 1): a positive
// decision value means fake.
type Linear struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// ProbFake returns the probability assigned to the FAKE class.
// A vector whose dimensionality does not match the weights is an
// internal fault, never a user input error.
func (l *Linear) ProbFake(vec []float64) (float64, error) {
	if len(vec) != len(l.Weights) {
		return 0, &types.DimensionalityError{Got: len(vec), Want: len(l.Weights)}
	}

	z := l.Intercept
	for i, x := range vec {
		z += l.Weights[i] * x
	}

	return 1 / (1 + math.Exp(-z)), nil
}
