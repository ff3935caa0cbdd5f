package feeds

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"veridect/pipeline"
	"veridect/types"
)

// WorkerCount bounds concurrent article fetches during a scan.
const WorkerCount = 5

// Scanner fetches an RSS/Atom feed and runs each item through the
// classification pipeline.
type Scanner struct {
	pipeline *pipeline.Pipeline
}

// NewScanner builds a scanner over the given pipeline.
func NewScanner(p *pipeline.Pipeline) *Scanner {
	return &Scanner{pipeline: p}
}

// FetchFeed retrieves and parses a feed, returning item metadata for
// up to maxCount entries.
func FetchFeed(ctx context.Context, feedURL string, maxCount int) ([]*types.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	articles := make([]*types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		articles = append(articles, &types.Article{
			ID:          id,
			Title:       item.Title,
			URL:         item.Link,
			PublishedAt: publishedAt,
			FetchedAt:   time.Now(),
			Summary:     summary,
		})
	}

	return articles, nil
}

// Scan fetches a feed and classifies each article's extracted text
// using a bounded worker pool. Per-article failures are reported on
// the article, never fatal for the scan.
func (s *Scanner) Scan(ctx context.Context, feedURL string, count int) (*types.ScanResult, error) {
	if count <= 0 {
		count = DefaultCount
	}
	if count > MaxCount {
		count = MaxCount
	}

	articles, err := FetchFeed(ctx, feedURL, count)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for article := range articleChan {
				s.classifyArticle(ctx, workerID, article)
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)

	return &types.ScanResult{
		FeedURL:      feedURL,
		FetchedAt:    time.Now(),
		ArticleCount: len(articles),
		Articles:     articles,
	}, nil
}

func (s *Scanner) classifyArticle(ctx context.Context, workerID int, article *types.Article) {
	if article.URL == "" {
		article.Error = "article has no URL"
		return
	}

	result, err := s.pipeline.AnalyzeURL(ctx, article.URL, "")
	if err != nil {
		article.Error = err.Error()
		log.Printf("[Worker %d] Failed to classify %s: %v", workerID, article.URL, err)
		return
	}

	article.Result = result
	log.Printf("[Worker %d] %s: %s (%.1f%%)", workerID, article.Title, result.Label, result.Confidence*100)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
