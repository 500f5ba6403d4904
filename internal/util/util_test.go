package util

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "widget", expected: "widget"},
		{name: "mixed case", input: "WiDgEt", expected: "widget"},
		{name: "surrounding whitespace", input: "  Widget \t", expected: "widget"},
		{name: "inner whitespace kept", input: " Big Widget ", expected: "big widget"},
		{name: "blank", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tt.input); got != tt.expected {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "phone", expected: "phone"},
		{name: "percent", input: "100%", expected: `100\%`},
		{name: "underscore", input: "a_b", expected: `a\_b`},
		{name: "backslash", input: `a\b`, expected: `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeLike(tt.input); got != tt.expected {
				t.Fatalf("EscapeLike(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		size     int
		expected int
	}{
		{name: "empty", total: 0, size: 5, expected: 0},
		{name: "exact", total: 10, size: 5, expected: 2},
		{name: "remainder", total: 11, size: 5, expected: 3},
		{name: "smaller than page", total: 3, size: 5, expected: 1},
		{name: "page of one", total: 4, size: 1, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TotalPages(tt.total, tt.size); got != tt.expected {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "two megabytes", bytes: 2 << 20, expected: "2.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}
