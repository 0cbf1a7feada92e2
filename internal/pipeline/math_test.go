package pipeline

import "testing"

func TestMathReducer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline math",
			input:    "the value $x + y$ grows",
			expected: "the value x + y grows",
		},
		{
			name:     "block math",
			input:    "$$\nE = mc^2\n$$",
			expected: "\nE = mc^2\n",
		},
		{
			name:     "block before inline",
			input:    "$$a$$ and $b$",
			expected: "a and b",
		},
		{
			// LaTeX delimiters reach this stage as placeholder runes.
			name:     "latex parentheses",
			input:    placeholderFor('(') + "x^2" + placeholderFor(')'),
			expected: "x^2",
		},
		{
			name:     "latex brackets multiline",
			input:    placeholderFor('[') + "\nx\n" + placeholderFor(']'),
			expected: "\nx\n",
		},
		{
			name:     "lone dollar untouched",
			input:    "costs $5 total",
			expected: "costs $5 total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewMathReducer().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
