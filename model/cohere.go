package model

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"veridect/types"
)

// CohereClassifier scores text through a fine-tuned Cohere Classify
// model whose labels are "FAKE" and "REAL".
// Docs: https://docs.cohere.com/reference/classify
type CohereClassifier struct {
	client  *cohereclient.Client
	modelID string
}

// NewCohereClassifier builds a classifier for the given fine-tuned
// model ID.
func NewCohereClassifier(apiKey, modelID string) *CohereClassifier {
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the
	// Cohere API.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereClassifier{client: client, modelID: modelID}
}

func (c *CohereClassifier) Name() string { return "cohere/" + c.modelID }

func (c *CohereClassifier) Score(ctx context.Context, cleanedText string) (types.ClassificationResult, error) {
	resp, err := c.client.Classify(ctx, &cohere.ClassifyRequest{
		Inputs: []string{cleanedText},
		Model:  &c.modelID,
	})
	if err != nil {
		return types.ClassificationResult{}, fmt.Errorf("cohere classify error: %w", err)
	}
	if resp == nil || len(resp.Classifications) == 0 {
		return types.ClassificationResult{}, errors.New("cohere classify returned no classifications")
	}

	item := resp.Classifications[0]

	// Prefer the per-label confidences so the probability pair is
	// exact; fall back to the top prediction alone.
	if fake, ok := item.Labels[string(types.LabelFake)]; ok && fake != nil && fake.Confidence != nil {
		return resultFromProbabilities(*fake.Confidence), nil
	}

	if item.Prediction == nil || item.Confidence == nil {
		return types.ClassificationResult{}, errors.New("cohere classify returned no prediction")
	}

	pFake := 1 - *item.Confidence
	if types.Label(*item.Prediction) == types.LabelFake {
		pFake = *item.Confidence
	}
	return resultFromProbabilities(pFake), nil
}
