package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"veridect/types"
)

const (
	fetchTimeout = 15 * time.Second

	// Some sites reject unidentified clients outright.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// maxFetchBytes bounds how much of a remote resource is read.
	maxFetchBytes = 20 << 20
)

// Extractor turns a source reference (URL or uploaded file) into plain
// text. It never retries; a failed extraction is reported to the user,
// who may resubmit.
type Extractor struct {
	client *http.Client
}

// NewExtractor builds an extractor with the default bounded HTTP
// client.
func NewExtractor() *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// FromURL fetches url and extracts plain text according to the
// declared content type: PDF page by page, Word documents paragraph by
// paragraph, anything else as HTML.
func (e *Extractor) FromURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &types.ExtractionError{Source: url, Reason: "invalid URL", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", &types.ExtractionError{Source: url, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &types.ExtractionError{
			Source: url,
			Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", &types.ExtractionError{Source: url, Reason: "failed to read body", Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/pdf"):
		text, err := extractPDF(body)
		if err != nil {
			return "", &types.ExtractionError{Source: url, Reason: "unparseable PDF", Err: err}
		}
		return text, nil

	case strings.Contains(contentType, "application/vnd.openxmlformats"):
		text, err := extractDocx(body)
		if err != nil {
			return "", &types.ExtractionError{Source: url, Reason: "unparseable document", Err: err}
		}
		return text, nil

	default:
		text, err := extractHTML(body, url)
		if err != nil {
			return "", &types.ExtractionError{Source: url, Reason: "unparseable HTML", Err: err}
		}
		return text, nil
	}
}

// FromFile extracts text from an uploaded file, dispatching on the
// declared extension. An unknown extension yields empty text and no
// error: "format not handled" is not a failure, unlike a parse error.
func (e *Extractor) FromFile(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFetchBytes))
	if err != nil {
		return "", &types.ExtractionError{Source: filename, Reason: "failed to read file", Err: err}
	}

	ext := strings.ToLower(filename)
	if i := strings.LastIndex(ext, "."); i >= 0 {
		ext = ext[i+1:]
	} else {
		ext = ""
	}

	switch ext {
	case "txt":
		return string(data), nil

	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &types.ExtractionError{Source: filename, Reason: "unparseable PDF", Err: err}
		}
		return text, nil

	case "docx":
		text, err := extractDocx(data)
		if err != nil {
			return "", &types.ExtractionError{Source: filename, Reason: "unparseable document", Err: err}
		}
		return text, nil

	case "xlsx":
		text, err := extractXLSX(data)
		if err != nil {
			return "", &types.ExtractionError{Source: filename, Reason: "unparseable spreadsheet", Err: err}
		}
		return text, nil

	default:
		// Legacy binary .doc/.xls land here too: the OOXML parsers
		// cannot read them, and an unhandled format is not a failure.
		return "", nil
	}
}
