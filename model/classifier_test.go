package model

import (
	"context"
	"errors"
	"math"
	"testing"

	"veridect/types"
)

func TestScoreClickbaitIsFake(t *testing.T) {
	classifier := NewLocalClassifier(testArtifact(t))

	cleaned := "breaking news scientist discover shocking truth doctor know click"
	result, err := classifier.Score(context.Background(), cleaned)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	if result.Label != types.LabelFake {
		t.Fatalf("expected FAKE, got %s (probabilities %+v)", result.Label, result.Probabilities)
	}
	if result.Prediction != ClassIndexFake {
		t.Fatalf("expected prediction %d, got %d", ClassIndexFake, result.Prediction)
	}
	if result.Probabilities.Fake <= result.Probabilities.Real {
		t.Fatalf("expected fake probability to dominate, got %+v", result.Probabilities)
	}
}

func TestScoreSoberTextIsReal(t *testing.T) {
	classifier := NewLocalClassifier(testArtifact(t))

	cleaned := "government study report official data"
	result, err := classifier.Score(context.Background(), cleaned)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	if result.Label != types.LabelReal {
		t.Fatalf("expected REAL, got %s (probabilities %+v)", result.Label, result.Probabilities)
	}
	if result.Prediction != ClassIndexReal {
		t.Fatalf("expected prediction %d, got %d", ClassIndexReal, result.Prediction)
	}
}

func TestScoreProbabilityInvariants(t *testing.T) {
	classifier := NewLocalClassifier(testArtifact(t))

	inputs := []string{
		"breaking news shocking truth",
		"government study report",
		"doctor know data",
		"news",
	}

	for _, cleaned := range inputs {
		result, err := classifier.Score(context.Background(), cleaned)
		if err != nil {
			t.Fatalf("score failed for %q: %v", cleaned, err)
		}

		sum := result.Probabilities.Fake + result.Probabilities.Real
		if math.Abs(sum-1.0) > 1e-6 {
			t.Fatalf("probabilities sum to %v for %q", sum, cleaned)
		}

		if result.Confidence != result.Probabilities.Max() {
			t.Fatalf("confidence %v is not max of %+v", result.Confidence, result.Probabilities)
		}
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	classifier := NewLocalClassifier(testArtifact(t))
	cleaned := "breaking news scientist discover shocking truth"

	first, err := classifier.Score(context.Background(), cleaned)
	if err != nil {
		t.Fatalf("first score failed: %v", err)
	}
	second, err := classifier.Score(context.Background(), cleaned)
	if err != nil {
		t.Fatalf("second score failed: %v", err)
	}

	if first.Label != second.Label ||
		first.Probabilities.Fake != second.Probabilities.Fake ||
		first.Probabilities.Real != second.Probabilities.Real {
		t.Fatalf("scoring is not deterministic: %+v vs %+v", first, second)
	}
}

func TestScoreDimensionalityMismatch(t *testing.T) {
	artifact := testArtifact(t)
	classifier := NewLocalClassifier(artifact)

	// Corrupt the classifier head after construction.
	artifact.Classifier.Weights = artifact.Classifier.Weights[:4]

	_, err := classifier.Score(context.Background(), "breaking news")
	if err == nil {
		t.Fatal("expected dimensionality error")
	}

	var dimErr *types.DimensionalityError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionalityError, got %v", err)
	}
}

func TestScoreOutOfVocabularyOnly(t *testing.T) {
	classifier := NewLocalClassifier(testArtifact(t))

	// Tokens entirely outside the vocabulary produce a zero vector;
	// the sigmoid still yields a valid probability from the intercept.
	result, err := classifier.Score(context.Background(), "zebra quasar xylophone")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	sum := result.Probabilities.Fake + result.Probabilities.Real
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("probabilities sum to %v", sum)
	}
}

func TestTransformBigrams(t *testing.T) {
	artifact := testArtifact(t)

	vec, err := artifact.Vectorizer.Transform("breaking news today")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	bigramIdx := artifact.Vectorizer.Vocabulary["breaking news"]
	if vec[bigramIdx] == 0 {
		t.Fatal("expected bigram feature to be populated")
	}

	// Row must be L2-normalized.
	var sumSquares float64
	for _, x := range vec {
		sumSquares += x * x
	}
	if math.Abs(sumSquares-1.0) > 1e-9 {
		t.Fatalf("expected unit-norm vector, squared norm = %v", sumSquares)
	}
}
