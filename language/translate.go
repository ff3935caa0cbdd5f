package language

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const translateTimeout = 10 * time.Second

// Translator abstracts an external text translation service.
type Translator interface {
	// Translate renders text from sourceLang into English.
	Translate(ctx context.Context, text, sourceLang string) (string, error)
}

// GoogleTranslator implements Translator against the public Google
// Translate web endpoint.
// Endpoint: POST https://translate.googleapis.com/translate_a/single
// Response: nested arrays, [[["translated","original",...],...],...]
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
}

// NewGoogleTranslator builds a translator with the default bounded
// HTTP client.
func NewGoogleTranslator() *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: "https://translate.googleapis.com/translate_a/single",
		client:   &http.Client{Timeout: translateTimeout},
	}
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	form := url.Values{
		"client": {"gtx"},
		"sl":     {sourceLang},
		"tl":     {"en"},
		"dt":     {"t"},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return parseTranslation(body)
}

// parseTranslation walks the endpoint's nested-array response and
// concatenates the translated segments.
func parseTranslation(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("invalid translation response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var out strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			out.WriteString(translated)
		}
	}

	result := out.String()
	if strings.TrimSpace(result) == "" {
		return "", fmt.Errorf("translation produced no text")
	}
	return result, nil
}
