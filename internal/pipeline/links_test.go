package pipeline

import "testing"

func TestLinkReducer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline link keeps label",
			input:    "see [the docs](https://example.com) here",
			expected: "see the docs here",
		},
		{
			name:     "reference link keeps label",
			input:    "see [the docs][ref] here",
			expected: "see the docs here",
		},
		{
			name:     "inline image keeps alt text",
			input:    "![a diagram](diagram.png)",
			expected: "a diagram",
		},
		{
			name:     "image with empty alt vanishes",
			input:    "before ![](x.png) after",
			expected: "before  after",
		},
		{
			name:     "reference definition line removed",
			input:    "text\n[ref]: https://example.com \"Title\"\nmore",
			expected: "text\n\nmore",
		},
		{
			name:     "comment marker removed",
			input:    "[//]: # (this is hidden)\nvisible",
			expected: "\nvisible",
		},
		{
			name:     "footnote reference removed",
			input:    "claim[^1] continues",
			expected: "claim continues",
		},
		{
			name:     "footnote definition with body removed",
			input:    "text\n[^1]: the note\n    more of the note\nafter",
			expected: "text\n\nafter",
		},
		{
			name:     "https autolink keeps url",
			input:    "<https://example.com>",
			expected: "https://example.com",
		},
		{
			name:     "mailto autolink keeps address",
			input:    "<mailto:dev@example.com>",
			expected: "mailto:dev@example.com",
		},
		{
			name:     "numeric reference marker removed",
			input:    "cited[1] here",
			expected: "cited here",
		},
		{
			name:     "residual bracket keeps inner text",
			input:    "[orphan label]",
			expected: "orphan label",
		},
		{
			name:     "unmatched bracket passes through",
			input:    "a [ b",
			expected: "a [ b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewLinkReducer().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
