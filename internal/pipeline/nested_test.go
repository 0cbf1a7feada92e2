package pipeline

import "testing"

func TestNestedStructureBlockquotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single level stripped flat",
			input:    "> quoted text",
			expected: "quoted text",
		},
		{
			name:     "two levels indent once",
			input:    "> > deeper",
			expected: "  deeper",
		},
		{
			name:     "three levels indent twice",
			input:    "> > > deepest",
			expected: "    deepest",
		},
		{
			name:     "mixed depths per line",
			input:    "> a\n> > b\n> a again",
			expected: "a\n  b\na again",
		},
		{
			name:     "tight markers without spaces",
			input:    ">>x",
			expected: "  x",
		},
		{
			name:     "non-quote line untouched",
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewNestedStructure().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNestedStructureListFlattening(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "top-level marker kept for the list reducer",
			input:    "- item",
			expected: "- item",
		},
		{
			name:     "indented bullet becomes spaces",
			input:    "  - nested",
			expected: "    nested",
		},
		{
			name:     "indented ordered marker becomes spaces",
			input:    "  1. nested",
			expected: "     nested",
		},
		{
			name:     "two-level nesting flattens fully",
			input:    "- a\n  - b\n    - c",
			expected: "- a\n    b\n      c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewNestedStructure().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNestedStructureReachesFixedPoint(t *testing.T) {
	t.Parallel()

	s := NewNestedStructure()
	once := s.Transform("> > > - deep\n  - item")
	twice := s.Transform(once)
	if once != twice {
		t.Errorf("not a fixed point: first %q, second %q", once, twice)
	}
}
