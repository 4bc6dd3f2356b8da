package extract

import (
	"regexp"
	"strings"
)

// ScrapeStrategy is the degraded fallback: it scans the raw byte stream for
// substrings enclosed in parentheses, brackets, or angle brackets, the
// delimiters PDF content streams use for literal and hex text. It never
// fails; a useless result is simply too short to clear the threshold.
type ScrapeStrategy struct{}

// NewScrapeStrategy creates the byte-scraping fallback strategy.
func NewScrapeStrategy() *ScrapeStrategy {
	return &ScrapeStrategy{}
}

// Name implements TextStrategy.
func (s *ScrapeStrategy) Name() string {
	return "byte-scrape"
}

var scrapeTokenRe = regexp.MustCompile(`\(([^()]+)\)|\[([^\[\]]+)\]|<([^<>]+)>`)

// scrapeCharRe keeps letters, digits and common business punctuation;
// everything else in a scraped fragment is stream noise.
var scrapeCharRe = regexp.MustCompile(`[^0-9A-Za-z .,:;/#%&@'|-]`)

// Extract interprets the bytes as a single-byte-per-char encoding, collects
// delimited substrings in order of appearance, strips non-business
// characters and collapses whitespace.
func (s *ScrapeStrategy) Extract(_ string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	// Decode byte-per-rune so multi-byte sequences cannot shift delimiter
	// positions in the raw stream.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}

	var builder strings.Builder
	for _, match := range scrapeTokenRe.FindAllStringSubmatch(string(runes), -1) {
		for _, group := range match[1:] {
			if group == "" {
				continue
			}
			cleaned := strings.TrimSpace(scrapeCharRe.ReplaceAllString(group, " "))
			if cleaned == "" {
				continue
			}
			builder.WriteString(cleaned)
			builder.WriteByte(' ')
		}
	}

	return collapseWhitespace(builder.String()), nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
