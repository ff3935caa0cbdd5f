package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"veridect/extract"
	"veridect/history"
	"veridect/language"
	"veridect/textclean"
	"veridect/types"
)

type fakeScorer struct {
	calls  int
	result types.ClassificationResult
	err    error
}

func (f *fakeScorer) Name() string { return "fake" }

func (f *fakeScorer) Score(ctx context.Context, cleanedText string) (types.ClassificationResult, error) {
	f.calls++
	if f.err != nil {
		return types.ClassificationResult{}, f.err
	}
	return f.result, nil
}

type noopTranslator struct{}

func (noopTranslator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	return text, nil
}

func fakeVerdict() types.ClassificationResult {
	return types.ClassificationResult{
		Prediction:    1,
		Label:         types.LabelFake,
		Confidence:    0.91,
		Probabilities: types.Probabilities{Fake: 0.91, Real: 0.09},
	}
}

func newTestPipeline(t *testing.T, scorer *fakeScorer) *Pipeline {
	t.Helper()

	cleaner, err := textclean.NewCleaner()
	if err != nil {
		t.Fatalf("failed to build cleaner: %v", err)
	}

	return New(
		extract.NewExtractor(),
		language.NewNormalizer(noopTranslator{}),
		cleaner,
		scorer,
		history.NewRecorder(),
		DefaultConfig(),
	)
}

func TestAnalyzeTextRecordsVerdict(t *testing.T) {
	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	input := "BREAKING NEWS!!! Scientists discovered this SHOCKING truth that doctors DON'T want you to know! Click here NOW!!!"
	result, err := p.AnalyzeText(context.Background(), input, "en")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if result.Label != types.LabelFake {
		t.Fatalf("expected FAKE, got %s", result.Label)
	}
	if result.TextLength != len([]rune(input)) {
		t.Fatalf("expected text length %d, got %d", len([]rune(input)), result.TextLength)
	}
	if result.Probabilities.Fake <= result.Probabilities.Real {
		t.Fatalf("expected fake probability to dominate: %+v", result.Probabilities)
	}
	if result.CleanedLength == 0 {
		t.Fatal("expected non-zero cleaned length")
	}

	if stats := p.Recorder().Aggregate(); stats.Total != 1 {
		t.Fatalf("expected 1 analysis record, got %d", stats.Total)
	}
}

func TestAnalyzeTextTooShort(t *testing.T) {
	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	_, err := p.AnalyzeText(context.Background(), "Hi ok", "en")
	if !errors.Is(err, types.ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}

	if scorer.calls != 0 {
		t.Fatalf("classifier must not run for rejected input, ran %d times", scorer.calls)
	}
	if stats := p.Recorder().Aggregate(); stats.Total != 0 {
		t.Fatalf("rejected input must not be recorded, got %d records", stats.Total)
	}
}

func TestAnalyzeTextTooLong(t *testing.T) {
	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	long := make([]byte, DefaultConfig().MaxTextChars+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := p.AnalyzeText(context.Background(), string(long), "en")
	if !errors.Is(err, types.ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if scorer.calls != 0 {
		t.Fatalf("classifier must not run for rejected input, ran %d times", scorer.calls)
	}
}

func TestAnalyzeTextEmptyAfterCleaning(t *testing.T) {
	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	// Long enough to pass validation, nothing left after cleaning.
	_, err := p.AnalyzeText(context.Background(), "it is what it is and so it was!!!", "en")
	if !errors.Is(err, types.ErrEmptyAfterClean) {
		t.Fatalf("expected ErrEmptyAfterClean, got %v", err)
	}
	if scorer.calls != 0 {
		t.Fatalf("classifier must not see a degenerate vector, ran %d times", scorer.calls)
	}
}

func TestAnalyzeURLNotFoundHaltsPipeline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	_, err := p.AnalyzeURL(context.Background(), server.URL, "en")

	var extErr *types.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if scorer.calls != 0 {
		t.Fatalf("classifier must not run after failed extraction, ran %d times", scorer.calls)
	}
	if stats := p.Recorder().Aggregate(); stats.Total != 0 {
		t.Fatalf("failed extraction must not be recorded, got %d records", stats.Total)
	}
}

func TestAnalyzeURLClassifiesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><article><p>The central bank held interest rates steady on Thursday, citing stable inflation figures and moderate wage growth across the region.</p></article></body></html>`))
	}))
	defer server.Close()

	scorer := &fakeScorer{result: fakeVerdict()}
	p := newTestPipeline(t, scorer)

	result, err := p.AnalyzeURL(context.Background(), server.URL, "en")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if result.SourceKind != types.SourceURL {
		t.Fatalf("expected URL source kind, got %s", result.SourceKind)
	}
	if scorer.calls != 1 {
		t.Fatalf("expected exactly one classifier call, got %d", scorer.calls)
	}
}

func TestAnalyzeScorerFailurePropagates(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("backend down")}
	p := newTestPipeline(t, scorer)

	_, err := p.AnalyzeText(context.Background(), "The council approved the budget after a lengthy debate over spending.", "en")
	if err == nil {
		t.Fatal("expected scorer failure to propagate")
	}
	if stats := p.Recorder().Aggregate(); stats.Total != 0 {
		t.Fatalf("failed classification must not be recorded, got %d records", stats.Total)
	}
}
