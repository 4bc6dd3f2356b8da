package docparse

import (
	"math"
	"testing"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "plain integer", input: "10", expected: 10},
		{name: "decimal", input: "5.00", expected: 5},
		{name: "thousands separator", input: "1,234.50", expected: 1234.5},
		{name: "currency prefix", input: "AED 1,200", expected: 1200},
		{name: "currency symbol", input: "$2,000.75", expected: 2000.75},
		{name: "percent sign", input: "5%", expected: 5},
		{name: "negative", input: "-3.5", expected: -3.5},
		{name: "surrounding whitespace", input: "  42  ", expected: 42},
		{name: "empty string", input: "", expected: 0},
		{name: "letters only", input: "abc", expected: 0},
		{name: "multiple dots", input: "12.3.4", expected: 0},
		{name: "lone dash", input: "-", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeNumber(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeNumber(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// NormalizeNumber must be defined on all inputs and never produce NaN or an
// infinity.
func TestNormalizeNumber_AlwaysFinite(t *testing.T) {
	inputs := []string{
		"", " ", "NaN", "nan", "Inf", "-Inf", "infinity",
		"1e999", "-1e999", "....", "--5", "%%", "AED", "12,34,56.78",
	}
	for _, in := range inputs {
		got := NormalizeNumber(in)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("NormalizeNumber(%q) = %v, want a finite number", in, got)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already ISO", input: "2025-10-09", expected: "2025-10-09"},
		{name: "slash day first", input: "09/10/2025", expected: "2025-10-09"},
		{name: "dash day first", input: "09-10-2025", expected: "2025-10-09"},
		{name: "single digit day and month", input: "9/1/2025", expected: "2025-01-09"},
		{name: "two digit year", input: "9/1/25", expected: "2025-01-09"},
		{name: "dot separated", input: "15.03.2026", expected: "2026-03-15"},
		{name: "long form", input: "15 January 2026", expected: "2026-01-15"},
		{name: "us long form", input: "January 15, 2026", expected: "2026-01-15"},
		{name: "unparseable returned unchanged", input: "next tuesday", expected: "next tuesday"},
		{name: "empty returned unchanged", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ISO input must round-trip unchanged.
func TestNormalizeDate_ISOIdentity(t *testing.T) {
	dates := []string{"2020-01-01", "2025-12-31", "2026-02-28"}
	for _, d := range dates {
		if got := NormalizeDate(d); got != d {
			t.Errorf("NormalizeDate(%q) = %q, want identity", d, got)
		}
	}
}
