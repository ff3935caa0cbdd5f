package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// SourceKind identifies how the text under analysis was acquired.
type SourceKind string

const (
	SourcePaste SourceKind = "paste"
	SourceURL   SourceKind = "url"
	SourceFile  SourceKind = "file"
)

// LangUnknown marks text whose language could not be determined.
const LangUnknown = "unknown"

// WorkingLanguage is the language the classifier was trained on.
// All feature extraction happens in this language.
const WorkingLanguage = "en"

// Document is the unit of work moving through the pipeline. Each stage
// derives new values rather than mutating earlier ones; the struct is
// treated as immutable once a stage has produced it.
type Document struct {
	RawText        string     `json:"raw_text"`
	SourceKind     SourceKind `json:"source_kind"`
	Origin         string     `json:"origin,omitempty"` // URL or filename when not pasted
	OriginLanguage string     `json:"origin_language"`
	WorkingText    string     `json:"working_text"`
	WasTranslated  bool       `json:"was_translated"`
}

// GenerateID creates a short stable ID from arbitrary input.
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
