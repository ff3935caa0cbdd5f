package types

import "time"

// AnalysisRecord is a read-only snapshot appended to the analysis log
// after each completed classification. Only a bounded preview of the
// input is retained, never the full text.
type AnalysisRecord struct {
	ID               string     `json:"id"`
	Timestamp        time.Time  `json:"timestamp"`
	TextPreview      string     `json:"text_preview"`
	SourceKind       SourceKind `json:"source_kind"`
	DetectedLanguage string     `json:"detected_language"`
	Label            Label      `json:"label"`
	Confidence       float64    `json:"confidence"`
}

// AggregateStats summarizes the analysis log at one instant.
type AggregateStats struct {
	Total          int       `json:"total"`
	FakeCount      int       `json:"fake_count"`
	RealCount      int       `json:"real_count"`
	FakePercent    float64   `json:"fake_percent"`
	RealPercent    float64   `json:"real_percent"`
	AvgConfidence  float64   `json:"avg_confidence"`
	FirstTimestamp time.Time `json:"first_timestamp"`
	LastTimestamp  time.Time `json:"last_timestamp"`
}
