package pipeline

import "testing"

func TestCleanupTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "known entity decoded",
			input:    "Tom &amp; Jerry",
			expected: "Tom & Jerry",
		},
		{
			name:     "typographic entities decoded",
			input:    "wait&hellip; ok&mdash;fine",
			expected: "wait… ok—fine",
		},
		{
			name:     "unknown entity left literal",
			input:    "&notarealentity;",
			expected: "&notarealentity;",
		},
		{
			name:     "footnote remnant removed",
			input:    "claim[^note] stands",
			expected: "claim stands",
		},
		{
			name:     "trailing whitespace trimmed per line",
			input:    "line one   \nline two\t",
			expected: "line one\nline two",
		},
		{
			name:     "excess blank lines collapsed",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "surrounding blank lines trimmed",
			input:    "\n\ntext\n\n",
			expected: "text",
		},
		{
			name:     "leading indent on first line kept",
			input:    "  item\n    nested",
			expected: "  item\n    nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewCleanup(true).Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanupReflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "soft wraps joined within a paragraph",
			input:    "one\ntwo\nthree",
			expected: "one two three",
		},
		{
			name:     "paragraph break survives",
			input:    "first para\nstill first\n\nsecond para",
			expected: "first para still first\n\nsecond para",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewCleanup(false).Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanupRestoresPlaceholders(t *testing.T) {
	t.Parallel()

	escaped := NewNormalizer().Transform(`\*not bold\*`)
	got := NewCleanup(true).Transform(escaped)
	if want := "*not bold*"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}
