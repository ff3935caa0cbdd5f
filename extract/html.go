package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// extractHTML pulls the readable article text out of an HTML page.
// Readability finds the main content block on article-shaped pages;
// when it comes back empty the page is stripped of non-content
// elements and its remaining visible text is used instead.
func extractHTML(body []byte, sourceURL string) (string, error) {
	parsedURL, err := url.Parse(sourceURL)
	if err != nil {
		parsedURL = nil
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return collapseBlankLines(article.TextContent), nil
	}

	return stripHTML(body)
}

// stripHTML removes non-content elements and returns the visible text
// with blank lines collapsed.
func stripHTML(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, header, footer, aside, noscript").Remove()

	return collapseBlankLines(doc.Text()), nil
}

func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
