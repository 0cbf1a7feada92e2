package pipeline

import "testing"

func TestInlineReducerFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold asterisks",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "bold underscores",
			input:    "This is __bold__ text",
			expected: "This is bold text",
		},
		{
			name:     "italic asterisk",
			input:    "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "italic underscore",
			input:    "This is _italic_ text",
			expected: "This is italic text",
		},
		{
			name:     "bold and italic together",
			input:    "This is **bold** and *italic*",
			expected: "This is bold and italic",
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~ kept",
			expected: "gone kept",
		},
		{
			name:     "inline code",
			input:    "run `go build` now",
			expected: "run go build now",
		},
		{
			name:     "subscript",
			input:    "H~2~O",
			expected: "H2O",
		},
		{
			name:     "superscript",
			input:    "x^2^ + y^2^",
			expected: "x2 + y2",
		},
		{
			name:     "highlight",
			input:    "==important== note",
			expected: "important note",
		},
		{
			name:     "nested bold in italic order",
			input:    "***both***",
			expected: "both",
		},
		{
			name:     "plain text unchanged",
			input:    "no markers here",
			expected: "no markers here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewInlineReducer().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInlineReducerCheckboxes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "checked normalized",
			input:    "[x] done",
			expected: checkedBox + " done",
		},
		{
			name:     "checked uppercase normalized",
			input:    "[X] done",
			expected: checkedBox + " done",
		},
		{
			name:     "unchecked normalized",
			input:    "[ ] pending",
			expected: uncheckedBox + " pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewInlineReducer().Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Unknown shortcodes keep their underscores behind placeholder runes
// until cleanup; restorePlaceholders makes the expectations readable.
func TestInlineReducerEmoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "known shortcode substituted",
			input:    "ship it :rocket:",
			expected: "ship it 🚀",
		},
		{
			name:     "plus-one shortcode",
			input:    ":+1:",
			expected: "👍",
		},
		{
			name:     "unknown shortcode left literal",
			input:    ":definitely_not_an_emoji_xyz:",
			expected: ":definitely_not_an_emoji_xyz:",
		},
		{
			name:     "underscores in unknown shortcode survive emphasis",
			input:    "emphasis _still works_ near :not_a_code:",
			expected: "emphasis still works near :not_a_code:",
		},
		{
			name:     "clock time untouched",
			input:    "meet at 12:30 sharp",
			expected: "meet at 12:30 sharp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := restorePlaceholders(NewInlineReducer().Transform(tt.input))
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
