package extract

import "strings"

// TextStrategy is one way of turning an uploaded PDF into plain text.
// Strategies are tried in order; the first one whose output clears the
// minimum-length threshold wins. Adding a new strategy (OCR, say) means
// appending to the chain, not touching the orchestration.
type TextStrategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Extract produces best-effort plain text. path points at a temporary
	// copy of the upload for strategies that need file access; data is the
	// original byte buffer for strategies that work on the raw stream.
	Extract(path string, data []byte) (string, error)
}

// StrategyResult records how a single strategy fared during one extraction
// run. Kept for diagnostics; the caller only sees the winning text.
type StrategyResult struct {
	Name   string
	Length int
	Err    error
}

// usableLength measures how much real text a strategy produced.
func usableLength(text string) int {
	return len(strings.TrimSpace(text))
}
