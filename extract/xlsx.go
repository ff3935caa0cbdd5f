package extract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractXLSX flattens the full tabular content of a spreadsheet into
// a text blob: cell values joined by spaces, rows by newlines, sheets
// in order. No semantic interpretation of cells is attempted.
func extractXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("not a valid spreadsheet: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close spreadsheet: %v", err)
		}
	}()

	var out []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line != "" {
				out = append(out, line)
			}
		}
	}

	return strings.Join(out, "\n"), nil
}
