package extract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// extractPDF pulls plain text out of a PDF, page by page, joined with
// newlines. Pages that fail to yield text are skipped rather than
// failing the whole document.
func extractPDF(data []byte) (string, error) {
	// Validate the file and get the page count up front; a corrupt
	// header fails here with a clearer error than mid-extraction.
	pageCount, err := pdfcpu.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}
	if pageCount == 0 {
		return "", nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: skipping PDF page %d: %v", i, err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, strings.TrimSpace(text))
		}
	}

	return strings.Join(pages, "\n"), nil
}
