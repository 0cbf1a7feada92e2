package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// ATX header: 1-6 hashes, text, optional trailing hashes.
	// The level indicator is discarded entirely: H1 and H6 read the same
	// in plain text.
	atxHeader = regexp.MustCompile(`(?m)^#{1,6}[ \t]+(.*?)[ \t]*#*[ \t]*$`)

	// Fenced code blocks by fence width. The language tag on the opening
	// fence is discarded. Single-backtick "fences" only exist across
	// lines; same-line code spans were unwrapped by the InlineReducer.
	tripleFence = regexp.MustCompile("(?s)`{3}[^\n]*\n(.*?)`{3}")
	doubleFence = regexp.MustCompile("(?s)`{2}[^`\n]*\n(.*?)`{2}")
	singleFence = regexp.MustCompile("(?s)`[^`\n]*\n(.*?)`")

	// Indented code line: four spaces or one tab
	indentedCodeLine = regexp.MustCompile(`^(?:    |\t)`)

	// Horizontal rule: three or more repeated -, *, or _
	horizontalRule = regexp.MustCompile(`(?m)^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
)

// blockRules runs fences widest-first so a triple fence is never eaten
// as three singles.
var blockRules = []rule{
	{re: tripleFence, fn: keepFenceContent},
	{re: doubleFence, fn: keepFenceContent},
	{re: singleFence, fn: keepFenceContent},
	{re: atxHeader, sub: "$1\n"},
	{re: horizontalRule, sub: ""},
}

// keepFenceContent replaces a fenced block with its trimmed inner content
// plus a paragraph break.
func keepFenceContent(groups []string) string {
	return strings.TrimSpace(groups[1]) + "\n"
}

// BlockReducer removes block-level markers: headers keep their text,
// code fences keep their content, horizontal rules vanish.
type BlockReducer struct{}

// NewBlockReducer creates a BlockReducer.
func NewBlockReducer() *BlockReducer {
	return &BlockReducer{}
}

// Name returns the stage name.
func (b *BlockReducer) Name() string { return "blocks" }

// Transform applies the block rules, then unindents indented code blocks.
func (b *BlockReducer) Transform(content string) string {
	content = applyRules(content, blockRules)
	return stripIndentedCode(content)
}

// stripIndentedCode removes the 4-space/tab prefix from indented code
// blocks and appends a trailing blank line after each block. A block must
// start at the top of the document or after a blank line; indented lines
// that directly follow text are list continuation or flattened nesting,
// not code.
func stripIndentedCode(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	prevBlank := true
	for i := 0; i < len(lines); {
		if prevBlank && indentedCodeLine.MatchString(lines[i]) {
			for i < len(lines) && indentedCodeLine.MatchString(lines[i]) {
				out = append(out, indentedCodeLine.ReplaceAllString(lines[i], ""))
				i++
			}
			out = append(out, "")
			prevBlank = true
			continue
		}
		out = append(out, lines[i])
		prevBlank = strings.TrimSpace(lines[i]) == ""
		i++
	}

	return strings.Join(out, "\n")
}
