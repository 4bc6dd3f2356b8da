package docparse

import (
	"reflect"
	"testing"
)

func TestSegmentLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "unix endings",
			input:    "first\nsecond\nthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "windows endings",
			input:    "first\r\nsecond\r\nthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "bare carriage returns",
			input:    "first\rsecond\rthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "blank lines dropped",
			input:    "first\n\n\nsecond\n   \nthird\n",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "lines trimmed",
			input:    "  first  \n\tsecond\t\n",
			expected: []string{"first", "second"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \n\t\r\n ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SegmentLines(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSegmentLines_PreservesOrder(t *testing.T) {
	got := SegmentLines("z\n\na\n\nm")
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentLines order = %v, want %v", got, want)
	}
}
