package history

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"veridect/types"
)

func sampleResult(label types.Label, confidence float64) types.AnalysisResult {
	return types.AnalysisResult{
		ClassificationResult: types.ClassificationResult{
			Label:      label,
			Confidence: confidence,
		},
		SourceKind:     types.SourcePaste,
		OriginLanguage: "en",
	}
}

func TestRecordAndAggregate(t *testing.T) {
	recorder := NewRecorder()

	recorder.Record(sampleResult(types.LabelFake, 0.9), "fake one")
	recorder.Record(sampleResult(types.LabelFake, 0.8), "fake two")
	recorder.Record(sampleResult(types.LabelReal, 0.7), "real one")

	stats := recorder.Aggregate()
	if stats.Total != 3 {
		t.Fatalf("expected 3 records, got %d", stats.Total)
	}
	if stats.FakeCount != 2 || stats.RealCount != 1 {
		t.Fatalf("unexpected label counts: %+v", stats)
	}
	if math.Abs(stats.AvgConfidence-0.8) > 1e-9 {
		t.Fatalf("expected average confidence 0.8, got %v", stats.AvgConfidence)
	}
	if math.Abs(stats.FakePercent-200.0/3) > 1e-9 {
		t.Fatalf("unexpected fake percent %v", stats.FakePercent)
	}
}

func TestClearEmptiesLog(t *testing.T) {
	recorder := NewRecorder()

	for i := 0; i < 5; i++ {
		recorder.Record(sampleResult(types.LabelFake, 0.9), fmt.Sprintf("entry %d", i))
	}

	recorder.Clear()

	if stats := recorder.Aggregate(); stats.Total != 0 {
		t.Fatalf("expected empty log after clear, got total %d", stats.Total)
	}
	if records := recorder.Records(); len(records) != 0 {
		t.Fatalf("expected no records after clear, got %d", len(records))
	}
}

func TestPreviewIsBounded(t *testing.T) {
	recorder := NewRecorder()

	long := strings.Repeat("a", PreviewLength*3)
	record := recorder.Record(sampleResult(types.LabelReal, 0.6), long)

	if len([]rune(record.TextPreview)) > PreviewLength+3 {
		t.Fatalf("preview too long: %d runes", len([]rune(record.TextPreview)))
	}
	if !strings.HasSuffix(record.TextPreview, "...") {
		t.Fatalf("expected truncated preview, got %q", record.TextPreview)
	}
}

func TestTimelineBuckets(t *testing.T) {
	recorder := NewRecorder()

	recorder.Record(sampleResult(types.LabelFake, 0.9), "one")
	recorder.Record(sampleResult(types.LabelReal, 0.7), "two")

	counts := recorder.Timeline(HourOfDay)

	total := 0
	for _, count := range counts {
		total += count
	}
	if total != 2 {
		t.Fatalf("expected 2 bucketed records, got %d", total)
	}
}

func TestConcurrentRecordAndAggregate(t *testing.T) {
	recorder := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				recorder.Record(sampleResult(types.LabelFake, 0.9), "concurrent")
				recorder.Aggregate()
			}
		}()
	}
	wg.Wait()

	if stats := recorder.Aggregate(); stats.Total != 1000 {
		t.Fatalf("expected 1000 records, got %d", stats.Total)
	}
}
