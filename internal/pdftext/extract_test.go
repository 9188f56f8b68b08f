package pdftext_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Tomasz2002/AI-project/internal/pdftext"
)

// buildPDF assembles a minimal but well-formed PDF with one page per entry
// in pageTexts, each page carrying its text in a single content stream.
func buildPDF(pageTexts []string) []byte {
	n := len(pageTexts)
	// object numbers: 1 catalog, 2 page tree, 3 font,
	// 4..3+n pages, 4+n..3+2n content streams
	numObjects := 3 + 2*n

	var buf bytes.Buffer
	offsets := make([]int, numObjects+1)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, n)
	for i := 0; i < n; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))

	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i := 0; i < n; i++ {
		writeObj(4+i, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			4+n+i))
	}

	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(4+n+i, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", numObjects+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= numObjects; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", numObjects+1, xrefOffset)

	return buf.Bytes()
}

func fixturePages(n int) []string {
	pages := make([]string, n)
	for i := range pages {
		pages[i] = fmt.Sprintf("Content of page %d", i+1)
	}
	return pages
}

func TestExtractPagesInvalidRange(t *testing.T) {
	doc := buildPDF(fixturePages(4))

	cases := []struct {
		name string
		from int
		to   int
	}{
		{"FromBelowOne", 0, 2},
		{"FromNegative", -1, 2},
		{"ToBeyondTotal", 1, 5},
		{"FromGreaterThanTo", 3, 2},
		{"BothOutOfRange", 0, 99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pdftext.ExtractPages(doc, tc.from, tc.to)
			if !errors.Is(err, pdftext.ErrInvalidPageRange) {
				t.Errorf("ExtractPages(%d, %d): expected ErrInvalidPageRange, got %v", tc.from, tc.to, err)
			}
		})
	}
}

func TestExtractPagesSubsets(t *testing.T) {
	doc := buildPDF(fixturePages(4))

	full, err := pdftext.ExtractPages(doc, 1, 4)
	if err != nil {
		t.Fatalf("ExtractPages(1, 4) failed: %v", err)
	}

	t.Run("FullRangeEqualsWholeDocument", func(t *testing.T) {
		for i := 1; i <= 4; i++ {
			part, err := pdftext.ExtractPages(doc, i, i)
			if err != nil {
				t.Fatalf("ExtractPages(%d, %d) failed: %v", i, i, err)
			}
			if !strings.Contains(full, strings.TrimSpace(part)) {
				t.Errorf("text of page %d missing from full extraction", i)
			}
		}
	})

	t.Run("SinglePageIsSubsetOfPair", func(t *testing.T) {
		single, err := pdftext.ExtractPages(doc, 2, 2)
		if err != nil {
			t.Fatalf("ExtractPages(2, 2) failed: %v", err)
		}
		pair, err := pdftext.ExtractPages(doc, 2, 3)
		if err != nil {
			t.Fatalf("ExtractPages(2, 3) failed: %v", err)
		}
		if !strings.Contains(pair, strings.TrimSpace(single)) {
			t.Error("pages [2,2] should be contained in pages [2,3]")
		}
		if len(pair) <= len(single) {
			t.Error("pages [2,3] should extract strictly more text than [2,2]")
		}
	})

	t.Run("RangeExcludesOtherPages", func(t *testing.T) {
		part, err := pdftext.ExtractPages(doc, 1, 2)
		if err != nil {
			t.Fatalf("ExtractPages(1, 2) failed: %v", err)
		}
		if strings.Contains(part, "page 3") || strings.Contains(part, "page 4") {
			t.Errorf("extraction of [1,2] leaked text from pages outside the range: %q", part)
		}
	})
}
