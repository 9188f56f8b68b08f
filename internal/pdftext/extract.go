package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrInvalidPageRange = errors.New("invalid page range")

// ExtractPages returns the concatenated plain text of pages from..to
// (1-based, inclusive) of the given PDF document. Pages outside the range
// are never touched. The range is invalid when from < 1, to exceeds the
// document's page count, or from > to.
func ExtractPages(data []byte, from, to int) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	totalPages := r.NumPage()
	if from < 1 || to > totalPages || from > to {
		return "", fmt.Errorf("%w: pages %d-%d of %d", ErrInvalidPageRange, from, to, totalPages)
	}

	var sb strings.Builder
	for i := from; i <= to; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
