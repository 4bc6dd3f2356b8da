package extract

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// DefaultMinTextLength is the smallest amount of extracted text considered a
// usable result. Anything shorter means the document is likely an
// image-based scan.
const DefaultMinTextLength = 10

// Extractor turns uploaded PDF bytes into best-effort plain text by running
// a chain of strategies. It holds no per-request state; concurrent calls are
// independent.
type Extractor struct {
	maxFileSize int64
	minTextLen  int
	tempDir     string
	strategies  []TextStrategy
}

// NewExtractor creates a text extractor with the standard strategy chain:
// structured page extraction first, byte scraping as the fallback.
// tempDir may be empty to use the system default.
func NewExtractor(maxFileSize int64, minTextLen int, tempDir string) *Extractor {
	if minTextLen <= 0 {
		minTextLen = DefaultMinTextLength
	}
	return &Extractor{
		maxFileSize: maxFileSize,
		minTextLen:  minTextLen,
		tempDir:     tempDir,
		strategies: []TextStrategy{
			NewStructuredStrategy(),
			NewScrapeStrategy(),
		},
	}
}

// ExtractText runs the strategy chain over the uploaded bytes and returns
// the first result clearing the minimum-length threshold.
//
// The bytes are written to a temporary file for the duration of the call
// (the structured parser needs file access) and the file is removed on every
// exit path; a failed removal is logged, never propagated.
func (e *Extractor) ExtractText(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", newError(KindEmptyInput, "uploaded file is empty")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "", newError(KindUnsupportedFormat, "unsupported file format: %s (only PDF is supported)", filename)
	}
	if e.maxFileSize > 0 && int64(len(data)) > e.maxFileSize {
		return "", newError(KindUnsupportedFormat, "file too large: %d bytes (max: %d bytes)", len(data), e.maxFileSize)
	}

	tmpPath, err := e.writeTempFile(data)
	if err != nil {
		return "", wrapError(KindLibraryUnavailable, err, "cannot stage upload for extraction")
	}
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("temp file cleanup failed for %s: %v", tmpPath, rmErr)
		}
	}()

	results := make([]StrategyResult, 0, len(e.strategies))
	for _, strategy := range e.strategies {
		text, stratErr := strategy.Extract(tmpPath, data)
		results = append(results, StrategyResult{
			Name:   strategy.Name(),
			Length: usableLength(text),
			Err:    stratErr,
		})
		if stratErr != nil {
			continue
		}
		if usableLength(text) >= e.minTextLen {
			return text, nil
		}
	}

	// Nothing cleared the threshold. If the primary strategy could not run
	// at all, classify accordingly; the fallback has already had its chance.
	if len(results) > 0 && results[0].Err != nil {
		return "", wrapError(KindLibraryUnavailable, results[0].Err,
			"structured text extraction unavailable and fallback yielded too little text")
	}
	return "", newError(KindInsufficientText,
		"extracted text below %d characters; document is likely image-based or empty", e.minTextLen)
}

func (e *Extractor) writeTempFile(data []byte) (string, error) {
	f, err := os.CreateTemp(e.tempDir, "docingest-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil {
			log.Printf("temp file cleanup failed for %s: %v", f.Name(), rmErr)
		}
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rmErr := os.Remove(f.Name()); rmErr != nil {
			log.Printf("temp file cleanup failed for %s: %v", f.Name(), rmErr)
		}
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return f.Name(), nil
}
