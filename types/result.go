package types

// Label is the binary verdict produced by the classifier.
type Label string

const (
	LabelFake Label = "FAKE"
	LabelReal Label = "REAL"
)

// Probabilities is the probability pair over the two classes.
// The two values sum to 1 within floating tolerance.
type Probabilities struct {
	Fake float64 `json:"fake"`
	Real float64 `json:"real"`
}

// Max returns the larger of the two class probabilities.
func (p Probabilities) Max() float64 {
	if p.Fake > p.Real {
		return p.Fake
	}
	return p.Real
}

// ClassificationResult is the verdict for one document. Prediction is
// the raw class index reported by the classifier: 0 = REAL, 1 = FAKE.
// That mapping is fixed at artifact load; see model.Artifact.
type ClassificationResult struct {
	Prediction    int           `json:"prediction"`
	Label         Label         `json:"label"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
	TextLength    int           `json:"text_length"`
	CleanedLength int           `json:"cleaned_length"`
}

// Degradation flags a best-effort step that fell back during the
// pipeline. The request still succeeded; the caller should warn the
// user that accuracy may be reduced.
type Degradation struct {
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// AnalysisResult is the full pipeline output: the verdict plus the
// ingestion metadata the dashboard renders alongside it.
type AnalysisResult struct {
	ClassificationResult
	SourceKind     SourceKind    `json:"source_kind"`
	OriginLanguage string        `json:"origin_language"`
	WasTranslated  bool          `json:"was_translated"`
	Degradations   []Degradation `json:"degradations,omitempty"`
}
