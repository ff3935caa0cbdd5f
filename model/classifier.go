package model

import (
	"context"

	"veridect/types"
)

// LocalClassifier scores text against the in-process artifact. The
// artifact is immutable after load, so concurrent calls need no
// coordination.
type LocalClassifier struct {
	artifact *Artifact
}

// NewLocalClassifier wraps a loaded, validated artifact.
func NewLocalClassifier(artifact *Artifact) *LocalClassifier {
	return &LocalClassifier{artifact: artifact}
}

func (c *LocalClassifier) Name() string { return "local/" + c.artifact.ModelType }

// Score transforms cleaned text into the artifact's feature space and
// returns the verdict. Deterministic: the same cleaned text always
// yields identical probabilities.
func (c *LocalClassifier) Score(ctx context.Context, cleanedText string) (types.ClassificationResult, error) {
	if err := ctx.Err(); err != nil {
		return types.ClassificationResult{}, err
	}

	vec, err := c.artifact.Vectorizer.Transform(cleanedText)
	if err != nil {
		return types.ClassificationResult{}, err
	}

	pFake, err := c.artifact.Classifier.ProbFake(vec)
	if err != nil {
		return types.ClassificationResult{}, err
	}

	return resultFromProbabilities(pFake), nil
}

// resultFromProbabilities applies the pinned class convention to a
// FAKE-class probability.
func resultFromProbabilities(pFake float64) types.ClassificationResult {
	probs := types.Probabilities{Fake: pFake, Real: 1 - pFake}

	prediction := ClassIndexReal
	label := types.LabelReal
	if probs.Fake > probs.Real {
		prediction = ClassIndexFake
		label = types.LabelFake
	}

	return types.ClassificationResult{
		Prediction:    prediction,
		Label:         label,
		Confidence:    probs.Max(),
		Probabilities: probs,
	}
}
