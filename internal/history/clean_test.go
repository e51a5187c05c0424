package history

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no trailers",
			input:    "Fix null pointer",
			expected: "Fix null pointer",
		},
		{
			name:     "trailers surrounding subject",
			input:    "Change-Id: abc123\nFix null pointer\nSigned-off-by: X",
			expected: "Fix null pointer",
		},
		{
			name:     "all five trailer kinds",
			input:    "Add retry logic\nChange-Id: I123\nReviewed-on: https://review.example.com/42\nReviewed-by: A\nTested-by: B\nSigned-off-by: C",
			expected: "Add retry logic",
		},
		{
			name:     "indented trailer",
			input:    "Fix crash\n  Signed-off-by: Someone <x@y.z>",
			expected: "Fix crash",
		},
		{
			name:     "multi-line body preserved",
			input:    "Improve caching\n- add LRU eviction\n- cap memory use\nChange-Id: Iabc",
			expected: "Improve caching\n- add LRU eviction\n- cap memory use",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  Fix flaky test  \n\n",
			expected: "Fix flaky test",
		},
		{
			name:     "only trailers",
			input:    "Change-Id: abc\nSigned-off-by: X",
			expected: "",
		},
		{
			name:     "empty message",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Fix null pointer",
		"Change-Id: abc123\nFix null pointer\nSigned-off-by: X",
		"Improve caching\n- add LRU eviction\nReviewed-by: A",
		"",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanRemovesAllTrailerLines(t *testing.T) {
	input := "Refactor config loading into explicit struct\nChange-Id: I999\nbody detail line\nTested-by: CI\nReviewed-on: https://gerrit.example.com/c/1"

	for _, line := range strings.Split(Clean(input), "\n") {
		for _, prefix := range trailerPrefixes {
			if strings.HasPrefix(strings.TrimSpace(line), prefix) {
				t.Errorf("cleaned message still contains trailer line %q", line)
			}
		}
	}
}
