package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2txt/internal/entity"
)

// Precompiled regex patterns for performance.
var (
	// Named HTML entity, e.g. &amp; or &hellip;
	namedEntity = regexp.MustCompile(`&([a-zA-Z][a-zA-Z0-9]{1,31});`)

	// Leftover footnote remnants that earlier stages left behind
	footnoteRemnant = regexp.MustCompile(`\[\^[^\]]*\]`)

	// Trailing whitespace per line
	trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)

	// Compress three or more newlines to a paragraph break
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Cleanup is the final stage: it decodes remaining named entities against
// the static table, normalizes whitespace, applies the line-break policy,
// and restores the placeholder runes the Normalizer introduced.
type Cleanup struct {
	preserveLineBreaks bool
}

// NewCleanup creates a Cleanup stage. When preserveLineBreaks is false,
// single newlines inside a paragraph are joined with spaces; paragraph
// breaks always survive.
func NewCleanup(preserveLineBreaks bool) *Cleanup {
	return &Cleanup{preserveLineBreaks: preserveLineBreaks}
}

// Name returns the stage name.
func (c *Cleanup) Name() string { return "cleanup" }

// Transform runs the cleanup passes. Unknown entities stay literal; that
// is passthrough, not an error.
func (c *Cleanup) Transform(content string) string {
	content = namedEntity.ReplaceAllStringFunc(content, func(m string) string {
		if v, ok := entity.Lookup(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})

	content = footnoteRemnant.ReplaceAllString(content, "")
	content = trailingWhitespace.ReplaceAllString(content, "")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")

	if !c.preserveLineBreaks {
		content = reflowParagraphs(content)
	}

	content = restorePlaceholders(content)

	// Trim blank lines only; leading spaces on the first line carry list
	// indentation and must survive.
	return strings.Trim(content, "\n")
}

// reflowParagraphs joins soft-wrapped lines within each paragraph into one
// line, keeping blank-line paragraph boundaries.
func reflowParagraphs(content string) string {
	paragraphs := strings.Split(content, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.ReplaceAll(p, "\n", " ")
	}
	return strings.Join(paragraphs, "\n\n")
}

// restorePlaceholders swaps the Private Use Area runes back to the bare
// punctuation they protected. This is the inverse of the Normalizer's
// escape resolution, minus the backslashes. Checkbox bracket runes are
// restored here as well.
func restorePlaceholders(content string) string {
	for i := 0; i < len(escapable); i++ {
		content = strings.ReplaceAll(content,
			string(rune(placeholderBase+i)), string(escapable[i]))
	}
	content = strings.ReplaceAll(content, string(rune(checkboxOpenRune)), "[")
	return strings.ReplaceAll(content, string(rune(checkboxCloseRune)), "]")
}
