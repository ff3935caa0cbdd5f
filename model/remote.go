package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"veridect/types"
)

// remoteTimeout tolerates the cold-start latency of a dormant hosted
// deployment, which can take most of a minute to wake.
const remoteTimeout = 60 * time.Second

// RemoteScorer delegates scoring to a sibling deployment of this
// service over its /predict endpoint. The contract is identical to
// scoring locally; only latency differs.
type RemoteScorer struct {
	endpoint string
	client   *http.Client
}

// NewRemoteScorer builds a scorer for the service at baseURL.
func NewRemoteScorer(baseURL string) *RemoteScorer {
	return &RemoteScorer{
		endpoint: strings.TrimRight(baseURL, "/") + "/predict",
		client:   &http.Client{Timeout: remoteTimeout},
	}
}

func (r *RemoteScorer) Name() string { return "remote" }

// Score posts cleaned text to the remote /predict endpoint, marked so
// the remote applies neither raw-text validation nor a second cleaning
// pass. The originating pipeline already validated the raw input;
// re-checking the shrunken cleaned form would reject text that scores
// fine locally.
func (r *RemoteScorer) Score(ctx context.Context, cleanedText string) (types.ClassificationResult, error) {
	payload, err := json.Marshal(map[string]any{"text": cleanedText, "cleaned": true})
	if err != nil {
		return types.ClassificationResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return types.ClassificationResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return types.ClassificationResult{}, fmt.Errorf("remote scorer unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return types.ClassificationResult{}, fmt.Errorf("remote scorer returned status %d: %s", resp.StatusCode, body.Error)
	}

	var parsed struct {
		Prediction    int                 `json:"prediction"`
		Label         types.Label         `json:"label"`
		Confidence    float64             `json:"confidence"`
		Probabilities types.Probabilities `json:"probabilities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return types.ClassificationResult{}, fmt.Errorf("invalid remote scorer response: %w", err)
	}

	return types.ClassificationResult{
		Prediction:    parsed.Prediction,
		Label:         parsed.Label,
		Confidence:    parsed.Confidence,
		Probabilities: parsed.Probabilities,
	}, nil
}
