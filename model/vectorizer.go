package model

import (
	"fmt"
	"math"
	"strings"
)

// Vectorizer is the fixed TF-IDF feature transformer: bag-of-n-grams
// counts weighted by the inverse-document-frequency values learned at
// training time, L2-normalized per document. The vocabulary never
// grows at runtime; out-of-vocabulary n-grams contribute nothing.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	Idf         []float64      `json:"idf"`
	NgramMin    int            `json:"ngram_min"`
	NgramMax    int            `json:"ngram_max"`
	MaxFeatures int            `json:"max_features"`
}

func (v *Vectorizer) validate() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if v.NgramMin < 1 || v.NgramMax < v.NgramMin {
		return fmt.Errorf("invalid ngram range [%d,%d]", v.NgramMin, v.NgramMax)
	}
	if len(v.Idf) != len(v.Vocabulary) {
		return fmt.Errorf("idf has %d entries, vocabulary has %d", len(v.Idf), len(v.Vocabulary))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.Idf) {
			return fmt.Errorf("vocabulary index %d for %q out of range", idx, term)
		}
	}
	return nil
}

// NumFeatures is the dimensionality of vectors produced by Transform.
func (v *Vectorizer) NumFeatures() int { return len(v.Idf) }

// Transform maps one cleaned string to its feature vector. The input
// is expected whitespace-tokenized already (see textclean).
func (v *Vectorizer) Transform(cleaned string) ([]float64, error) {
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("cannot vectorize empty text")
	}

	vec := make([]float64, v.NumFeatures())
	for n := v.NgramMin; n <= v.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			idx, ok := v.Vocabulary[term]
			if !ok {
				continue
			}
			vec[idx] += v.Idf[idx]
		}
	}

	// L2 normalization, matching training-time row scaling.
	var sumSquares float64
	for _, x := range vec {
		sumSquares += x * x
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
