package textclean

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	golem "github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// MinTokenLength is the shortest token kept after stopword removal.
// Shorter tokens carry almost no signal for the n-gram features.
const MinTokenLength = 3

var (
	urlPattern     = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+)`)
	emailPattern   = regexp.MustCompile(`\S+@\S+`)
	nonAlphaRunes  = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Cleaner performs the deterministic lexical normalization applied to
// working text before vectorization. The step order is fixed and must
// match the cleaning used when the classifier was trained.
type Cleaner struct {
	lemmatizer *golem.Lemmatizer
}

// NewCleaner builds a Cleaner backed by the English lemma dictionary.
func NewCleaner() (*Cleaner, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma dictionary: %w", err)
	}
	return &Cleaner{lemmatizer: lemmatizer}, nil
}

// Clean normalizes text for vectorization. It is total over any input:
// an internal failure degrades to returning the input unchanged rather
// than failing the request.
func (c *Cleaner) Clean(text string) (cleaned string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: text cleaning panicked, using raw text: %v", r)
			cleaned = text
		}
	}()

	// 1. Case folding
	s := strings.ToLower(text)

	// 2. Strip URL-like and email-like tokens before the alpha filter
	// turns them into spurious word runs.
	s = urlPattern.ReplaceAllString(s, " ")
	s = emailPattern.ReplaceAllString(s, " ")

	// 3. Letters and whitespace only
	s = nonAlphaRunes.ReplaceAllString(s, "")

	// 4. Collapse whitespace
	s = strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}

	// 5-7. Tokenize, drop stopwords and short tokens, lemmatize, rejoin
	words := strings.Split(s, " ")
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < MinTokenLength {
			continue
		}
		if _, stop := englishStopwords[word]; stop {
			continue
		}
		kept = append(kept, c.lemmatizer.Lemma(word))
	}

	return strings.Join(kept, " ")
}
