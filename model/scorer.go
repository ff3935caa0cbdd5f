package model

import (
	"context"
	"os"

	"veridect/types"
)

// Scorer abstracts a cleaned-text -> verdict classifier so the
// pipeline can run against the local artifact, a remote deployment of
// this service, or a hosted classify API interchangeably.
type Scorer interface {
	Score(ctx context.Context, cleanedText string) (types.ClassificationResult, error)
	Name() string
}

// NewDefaultScorer selects a scorer from the environment. A remote
// endpoint wins if configured, then a Cohere fine-tuned model, then
// the local artifact. The artifact may be nil only when a non-local
// backend is configured.
func NewDefaultScorer(artifact *Artifact) Scorer {
	if endpoint := os.Getenv("REMOTE_SCORER_URL"); endpoint != "" {
		return NewRemoteScorer(endpoint)
	}

	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		if modelID := os.Getenv("COHERE_CLASSIFY_MODEL"); modelID != "" {
			return NewCohereClassifier(key, modelID)
		}
	}

	if artifact != nil {
		return NewLocalClassifier(artifact)
	}
	return nil
}
