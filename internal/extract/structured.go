package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// StructuredStrategy extracts text through the PDF's internal page and
// content-stream model. This is the primary strategy; it fails outright on
// malformed files, which the orchestrator treats as "library unavailable"
// once the fallback has also been tried.
type StructuredStrategy struct {
	maxTextSize int
}

// NewStructuredStrategy creates the page-by-page extraction strategy.
func NewStructuredStrategy() *StructuredStrategy {
	return &StructuredStrategy{
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// Name implements TextStrategy.
func (s *StructuredStrategy) Name() string {
	return "structured"
}

// Extract renders each page to plain text and concatenates the pages with
// newline separators. Individual page failures are skipped; the underlying
// parser panics on some malformed inputs, so those are recovered and
// reported as ordinary errors.
func (s *StructuredStrategy) Extract(path string, _ []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("structured extraction panicked: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > s.maxTextSize {
			remaining := s.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < reader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
