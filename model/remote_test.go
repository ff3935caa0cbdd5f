package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veridect/types"
)

func TestRemoteScoreMarksTextCleaned(t *testing.T) {
	var got struct {
		Text    string `json:"text"`
		Cleaned bool   `json:"cleaned"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid request body: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"prediction":    ClassIndexFake,
			"label":         types.LabelFake,
			"confidence":    0.91,
			"probabilities": types.Probabilities{Fake: 0.91, Real: 0.09},
		})
	}))
	defer server.Close()

	scorer := NewRemoteScorer(server.URL + "/")
	result, err := scorer.Score(context.Background(), "break news today")
	if err != nil {
		t.Fatalf("remote score failed: %v", err)
	}

	if got.Text != "break news today" {
		t.Fatalf("expected cleaned text forwarded verbatim, got %q", got.Text)
	}
	if !got.Cleaned {
		t.Fatal("request must mark the text as already cleaned")
	}
	if result.Label != types.LabelFake || result.Confidence != 0.91 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRemoteScoreErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model_not_loaded"})
	}))
	defer server.Close()

	scorer := NewRemoteScorer(server.URL)
	_, err := scorer.Score(context.Background(), "break news today")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "model_not_loaded") {
		t.Fatalf("expected status and error kind in message, got %v", err)
	}
}

func TestRemoteScoreUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	scorer := NewRemoteScorer(server.URL)
	_, err := scorer.Score(context.Background(), "break news today")
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}
