package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"veridect/types"
)

// PreviewLength bounds how much of the original input a record keeps.
const PreviewLength = 100

// BucketFunc maps a record timestamp to a bucket key for timeline
// grouping.
type BucketFunc func(time.Time) string

// Recorder is the append-only analysis log. All mutation is serialized
// behind a single mutex so aggregates never observe a half-applied
// append or a clear interleaved with one. Whether one Recorder is
// shared process-wide or created per session is the caller's choice;
// the server shares one.
type Recorder struct {
	mu      sync.Mutex
	records []types.AnalysisRecord
}

// NewRecorder creates an empty analysis log.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one snapshot of a completed classification. Only a
// bounded preview of the input text is retained.
func (r *Recorder) Record(result types.AnalysisResult, rawText string) types.AnalysisRecord {
	record := types.AnalysisRecord{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		TextPreview:      preview(rawText),
		SourceKind:       result.SourceKind,
		DetectedLanguage: result.OriginLanguage,
		Label:            result.Label,
		Confidence:       result.Confidence,
	}

	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()

	return record
}

// Records returns a copy of the log, oldest first.
func (r *Recorder) Records() []types.AnalysisRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.AnalysisRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Aggregate computes summary statistics over a single consistent
// snapshot of the log.
func (r *Recorder) Aggregate() types.AggregateStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := types.AggregateStats{Total: len(r.records)}
	if stats.Total == 0 {
		return stats
	}

	var confidenceSum float64
	for _, record := range r.records {
		if record.Label == types.LabelFake {
			stats.FakeCount++
		} else {
			stats.RealCount++
		}
		confidenceSum += record.Confidence
	}

	total := float64(stats.Total)
	stats.FakePercent = 100 * float64(stats.FakeCount) / total
	stats.RealPercent = 100 * float64(stats.RealCount) / total
	stats.AvgConfidence = confidenceSum / total
	stats.FirstTimestamp = r.records[0].Timestamp
	stats.LastTimestamp = r.records[len(r.records)-1].Timestamp

	return stats
}

// Timeline groups records by bucketFn and returns counts per bucket.
func (r *Recorder) Timeline(bucketFn BucketFunc) map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, record := range r.records {
		counts[bucketFn(record.Timestamp)]++
	}
	return counts
}

// Clear atomically empties the log.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// HourOfDay buckets timestamps by local hour, the grouping the
// dashboard's timeline chart uses.
func HourOfDay(ts time.Time) string {
	return ts.Format("15")
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}
