package pipeline

import (
	"regexp"
	"strings"
)

// tabWidth is the visual width a tab contributes to list indentation.
const tabWidth = 4

// Precompiled regex patterns for performance.
var (
	// Task-list marker: bullet, then [ ] / [x] / [X]
	taskMarker = regexp.MustCompile(`^[-*+][ \t]+\[([ xX])\][ \t]+`)

	// Unordered bullet
	unorderedMarker = regexp.MustCompile(`^[-*+][ \t]+`)

	// Ordered marker: 1. / 1) / [1] / a. / a)
	orderedMarker = regexp.MustCompile(`^(?:\d+[.)]|\[\d+\]|[a-zA-Z][.)])[ \t]+`)
)

// ListReducer converts list markers into indented plain text. It keeps a
// stack of the indent widths of currently open levels; the stack depth at
// the time an item is emitted determines its output indent (two spaces per
// level). Task-list checkboxes are normalized to a uniform visible marker.
type ListReducer struct{}

// NewListReducer creates a ListReducer.
func NewListReducer() *ListReducer {
	return &ListReducer{}
}

// Name returns the stage name.
func (l *ListReducer) Name() string { return "lists" }

// Transform processes the text line by line. Non-list lines pass through
// unchanged but still close any deeper list levels.
func (l *ListReducer) Transform(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	var stack []int // indent widths of open levels

	for _, line := range lines {
		indent := indentWidth(line)
		rest := strings.TrimLeft(line, " \t")

		// Close levels that this line's indent has ended.
		for len(stack) > 0 && stack[len(stack)-1] >= indent {
			stack = stack[:len(stack)-1]
		}

		prefix := ""
		matched := false

		if m := taskMarker.FindStringSubmatch(rest); m != nil {
			if m[1] == " " {
				prefix = uncheckedBox + " "
			} else {
				prefix = checkedBox + " "
			}
			rest = rest[len(m[0]):]
			matched = true
		} else if m := unorderedMarker.FindString(rest); m != "" {
			rest = rest[len(m):]
			matched = true
		} else if m := orderedMarker.FindString(rest); m != "" {
			rest = rest[len(m):]
			matched = true
		}

		if !matched {
			out = append(out, line)
			continue
		}

		stack = append(stack, indent)
		out = append(out, strings.Repeat("  ", len(stack))+prefix+rest)
	}

	return strings.Join(out, "\n")
}

// indentWidth returns the visual width of a line's leading whitespace.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += tabWidth
		default:
			return w
		}
	}
	return w
}
