package language

import (
	"context"
	"log"

	"github.com/abadojack/whatlanggo"

	"veridect/types"
)

// AutoDetect asks the normalizer to detect the source language itself.
const AutoDetect = "auto"

// Normalizer ensures downstream stages always see English working
// text while keeping the caller's original text intact. Detection and
// translation are both best-effort: either may degrade, neither ever
// fails a request.
type Normalizer struct {
	translator Translator
}

// NewNormalizer builds a normalizer around the given translator.
func NewNormalizer(translator Translator) *Normalizer {
	return &Normalizer{translator: translator}
}

// Normalize fills the language fields of doc. langHint overrides
// detection when it names a concrete language; empty or "auto" runs
// detection on the raw text.
func (n *Normalizer) Normalize(ctx context.Context, doc types.Document, langHint string) (types.Document, []types.Degradation) {
	var degradations []types.Degradation

	lang := langHint
	if lang == "" || lang == AutoDetect {
		detected, deg := detect(doc.RawText)
		lang = detected
		if deg != nil {
			degradations = append(degradations, *deg)
		}
	}

	doc.OriginLanguage = lang

	if lang == types.WorkingLanguage {
		doc.WorkingText = doc.RawText
		doc.WasTranslated = false
		return doc, degradations
	}

	translated, err := n.translator.Translate(ctx, doc.RawText, lang)
	if err != nil {
		// Keep the pipeline available: proceed with the untranslated
		// text and tell the caller confidence may be reduced, since
		// the classifier is English-trained.
		log.Printf("Warning: translation from %q failed: %v", lang, err)
		degradations = append(degradations, types.Degradation{
			Stage:  "translation",
			Reason: "translation unavailable, classifying untranslated text",
		})
		doc.WorkingText = doc.RawText
		doc.WasTranslated = false
		return doc, degradations
	}

	doc.WorkingText = translated
	doc.WasTranslated = true
	return doc, degradations
}

// detect runs best-effort language detection. Uncertain or failed
// detection falls back to English rather than failing the request.
func detect(text string) (string, *types.Degradation) {
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()

	if code == "" {
		return types.WorkingLanguage, &types.Degradation{
			Stage:  "detection",
			Reason: "language could not be determined, assuming English",
		}
	}

	if !info.IsReliable() {
		if code == types.WorkingLanguage {
			return code, nil
		}
		return types.WorkingLanguage, &types.Degradation{
			Stage:  "detection",
			Reason: "language detection uncertain, assuming English",
		}
	}

	return code, nil
}
