package docparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numberJunkRe = regexp.MustCompile(`[^0-9.\-]`)
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe    = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2}|\d{4})$`)
)

// NormalizeNumber converts a loosely formatted numeric token into a float.
// Thousands separators, currency symbols and percent signs are stripped.
// It is defined on all inputs and always returns a finite number; garbage
// becomes 0.
func NormalizeNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = numberJunkRe.ReplaceAllString(s, "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// genericDateLayouts covers formats seen on supplier documents that don't
// match the short numeric styles.
var genericDateLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006/01/02",
	time.RFC3339,
}

// NormalizeDate converts a date token to ISO YYYY-MM-DD. Already-ISO values
// pass through unchanged. Short numeric dates are always interpreted
// day-first; two-digit years are expanded into the 2000s. Anything that
// still doesn't parse is returned unchanged rather than erroring, since the
// value is reviewed by a human downstream.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	if isoDateRe.MatchString(s) {
		return s
	}

	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		day, month, year := m[1], m[2], m[3]
		if len(day) == 1 {
			day = "0" + day
		}
		if len(month) == 1 {
			month = "0" + month
		}
		if len(year) == 2 {
			year = "20" + year
		}
		return year + "-" + month + "-" + day
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
