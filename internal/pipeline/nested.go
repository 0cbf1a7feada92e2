package pipeline

import (
	"regexp"
	"strings"
)

// maxFlattenIterations caps the fixed-point loop. Real documents converge
// in one iteration per nesting level; the cap guards against pattern
// interactions that would otherwise oscillate.
const maxFlattenIterations = 100

// Precompiled regex patterns for performance.
var (
	// One or more leading blockquote markers, each optionally followed
	// by a single space or tab
	blockquotePrefix = regexp.MustCompile(`(?m)^((?:>[ \t]?)+)`)

	// An indented (nested) list marker: leading whitespace, then a
	// bullet or ordered marker, then spacing
	nestedListMarker = regexp.MustCompile(`(?m)^([ \t]+)(?:[-*+]|\d+[.)])[ \t]+`)
)

// NestedStructure flattens blockquote prefixes and nested list markers
// until the text stops changing. A line quoted N levels deep loses its
// markers and gains (N-1) double-space indents; an indented list marker is
// replaced by spaces of the same width, leaving top-level markers for the
// ListReducer.
type NestedStructure struct{}

// NewNestedStructure creates a NestedStructure stage.
func NewNestedStructure() *NestedStructure {
	return &NestedStructure{}
}

// Name returns the stage name.
func (s *NestedStructure) Name() string { return "nested" }

// Transform runs the flattening passes to a fixed point. Termination is
// guaranteed: every pass strictly removes marker characters or changes
// nothing, and maxFlattenIterations bounds the loop regardless.
func (s *NestedStructure) Transform(content string) string {
	for i := 0; i < maxFlattenIterations; i++ {
		next := flattenBlockquotes(content)
		next = flattenNestedLists(next)
		if next == content {
			break
		}
		content = next
	}
	return content
}

// flattenBlockquotes strips leading > markers, indenting the remaining
// content by one double-space unit per nesting level beyond the first.
func flattenBlockquotes(content string) string {
	return blockquotePrefix.ReplaceAllStringFunc(content, func(m string) string {
		depth := strings.Count(m, ">")
		return strings.Repeat("  ", depth-1)
	})
}

// flattenNestedLists replaces an indented list marker with spaces of equal
// width, preserving the visual indent of the item text.
func flattenNestedLists(content string) string {
	return nestedListMarker.ReplaceAllStringFunc(content, func(m string) string {
		ws := m[:len(m)-len(strings.TrimLeft(m, " \t"))]
		return ws + strings.Repeat(" ", len(m)-len(ws))
	})
}
