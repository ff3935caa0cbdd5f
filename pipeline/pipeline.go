package pipeline

import (
	"context"
	"io"
	"log"
	"unicode/utf8"

	"veridect/extract"
	"veridect/history"
	"veridect/language"
	"veridect/model"
	"veridect/textclean"
	"veridect/types"
)

// Config bounds the text accepted by the pipeline.
type Config struct {
	MinTextChars    int
	MaxTextChars    int
	MinCleanedChars int
}

// DefaultConfig matches the deployed limits of the original service.
func DefaultConfig() Config {
	return Config{
		MinTextChars:    20,
		MaxTextChars:    100000,
		MinCleanedChars: 5,
	}
}

// Pipeline chains extraction, language normalization, cleaning and
// classification, and records each completed verdict. Each request is
// a short synchronous pass; no state is shared between requests except
// the immutable scorer and the mutex-guarded recorder.
type Pipeline struct {
	extractor  *extract.Extractor
	normalizer *language.Normalizer
	cleaner    *textclean.Cleaner
	scorer     model.Scorer
	recorder   *history.Recorder
	cfg        Config
}

// New wires a pipeline from its stages. recorder may be shared across
// pipelines or scoped per session; the pipeline does not care.
func New(extractor *extract.Extractor, normalizer *language.Normalizer, cleaner *textclean.Cleaner, scorer model.Scorer, recorder *history.Recorder, cfg Config) *Pipeline {
	if cfg.MinTextChars == 0 {
		cfg = DefaultConfig()
	}
	return &Pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		cleaner:    cleaner,
		scorer:     scorer,
		recorder:   recorder,
		cfg:        cfg,
	}
}

// Recorder exposes the analysis log backing this pipeline.
func (p *Pipeline) Recorder() *history.Recorder { return p.recorder }

// AnalyzeText classifies pasted text.
func (p *Pipeline) AnalyzeText(ctx context.Context, text, langHint string) (*types.AnalysisResult, error) {
	return p.analyze(ctx, text, types.SourcePaste, "", langHint)
}

// AnalyzeURL fetches and classifies the document behind url.
func (p *Pipeline) AnalyzeURL(ctx context.Context, url, langHint string) (*types.AnalysisResult, error) {
	text, err := p.extractor.FromURL(ctx, url)
	if err != nil {
		return nil, err
	}
	return p.analyze(ctx, text, types.SourceURL, url, langHint)
}

// AnalyzeFile classifies an uploaded file, dispatching extraction on
// its extension.
func (p *Pipeline) AnalyzeFile(ctx context.Context, filename string, r io.Reader, langHint string) (*types.AnalysisResult, error) {
	text, err := p.extractor.FromFile(filename, r)
	if err != nil {
		return nil, err
	}
	return p.analyze(ctx, text, types.SourceFile, filename, langHint)
}

// analyze runs normalization, cleaning and scoring over already
// extracted text. Validation happens before the classifier is ever
// touched; nothing is recorded for a failed request.
func (p *Pipeline) analyze(ctx context.Context, text string, kind types.SourceKind, origin, langHint string) (*types.AnalysisResult, error) {
	if err := p.validate(text); err != nil {
		return nil, err
	}

	doc := types.Document{
		RawText:    text,
		SourceKind: kind,
		Origin:     origin,
	}

	doc, degradations := p.normalizer.Normalize(ctx, doc, langHint)

	cleaned := p.cleaner.Clean(doc.WorkingText)
	if utf8.RuneCountInString(cleaned) < p.cfg.MinCleanedChars {
		return nil, types.ErrEmptyAfterClean
	}

	verdict, err := p.scorer.Score(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	verdict.TextLength = utf8.RuneCountInString(text)
	verdict.CleanedLength = utf8.RuneCountInString(cleaned)

	result := &types.AnalysisResult{
		ClassificationResult: verdict,
		SourceKind:           kind,
		OriginLanguage:       doc.OriginLanguage,
		WasTranslated:        doc.WasTranslated,
		Degradations:         degradations,
	}

	if p.recorder != nil {
		p.recorder.Record(*result, text)
	}

	log.Printf("Classified %s input: %s (confidence %.1f%%)", kind, result.Label, result.Confidence*100)
	return result, nil
}

func (p *Pipeline) validate(text string) error {
	length := utf8.RuneCountInString(text)
	switch {
	case length == 0:
		return types.ErrMissingText
	case length < p.cfg.MinTextChars:
		return types.ErrTooShort
	case length > p.cfg.MaxTextChars:
		return types.ErrTooLong
	}
	return nil
}
