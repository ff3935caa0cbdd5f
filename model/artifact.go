package model

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Class index convention, fixed at artifact load and applied
// everywhere: index 0 = REAL, index 1 = FAKE. The original system's
// two backends disagreed on this; every artifact consumed here must be
// exported with this ordering, and the loader refuses artifacts that
// declare anything else.
const (
	ClassIndexReal = 0
	ClassIndexFake = 1
)

// Metrics are training-time scores carried in the artifact for
// display only; nothing in the classification path reads them.
type Metrics struct {
	Accuracy float64 `json:"accuracy,omitempty"`
	F1       float64 `json:"f1,omitempty"`
}

// Artifact bundles the pre-trained feature transformer and classifier.
// It is loaded once at startup, validated, and shared read-only across
// all requests; nothing mutates it afterwards.
type Artifact struct {
	ModelType  string      `json:"model_type"`
	Version    string      `json:"version"`
	Labels     []string    `json:"labels"`
	Metrics    Metrics     `json:"metrics"`
	Vectorizer *Vectorizer `json:"vectorizer"`
	Classifier *Linear     `json:"classifier"`
}

// LoadArtifact decodes and validates an artifact from r. Any
// validation failure here is a fatal startup condition for the
// service, not a per-request error.
func LoadArtifact(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks internal consistency: the vectorizer's feature space
// and the classifier's expected input dimensionality must match
// exactly, and the label ordering must follow the pinned convention.
func (a *Artifact) Validate() error {
	if a.Vectorizer == nil {
		return fmt.Errorf("artifact has no vectorizer")
	}
	if a.Classifier == nil {
		return fmt.Errorf("artifact has no classifier")
	}
	if err := a.Vectorizer.validate(); err != nil {
		return fmt.Errorf("invalid vectorizer: %w", err)
	}

	features := a.Vectorizer.NumFeatures()
	if len(a.Classifier.Weights) != features {
		return fmt.Errorf("classifier expects %d features, vectorizer produces %d",
			len(a.Classifier.Weights), features)
	}

	if len(a.Labels) != 2 || a.Labels[ClassIndexReal] != "REAL" || a.Labels[ClassIndexFake] != "FAKE" {
		return fmt.Errorf("artifact labels must be [\"REAL\", \"FAKE\"], got %v", a.Labels)
	}

	return nil
}

// SelfTest runs a trivial transform+predict to catch silent artifact
// corruption. Used by the health endpoint; a nil error means the
// artifact is actually usable, not merely non-nil.
func (a *Artifact) SelfTest() error {
	vec, err := a.Vectorizer.Transform("breaking news shocking truth doctor know")
	if err != nil {
		return fmt.Errorf("self-test transform failed: %w", err)
	}

	pFake, err := a.Classifier.ProbFake(vec)
	if err != nil {
		return fmt.Errorf("self-test predict failed: %w", err)
	}
	if math.IsNaN(pFake) || pFake < 0 || pFake > 1 {
		return fmt.Errorf("self-test produced invalid probability %v", pFake)
	}
	return nil
}
