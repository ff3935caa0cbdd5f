package types

import "time"

// Article is one feed item selected for classification during a feed
// scan, with its eventual verdict. Extracted article text is consumed
// by the pipeline and not carried on the item.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at"`
	Summary     string    `json:"summary"`

	Result *AnalysisResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ScanResult is the top-level wrapper for a feed scan response.
type ScanResult struct {
	FeedURL      string     `json:"feed_url"`
	FetchedAt    time.Time  `json:"fetched_at"`
	ArticleCount int        `json:"article_count"`
	Articles     []*Article `json:"articles"`
}
