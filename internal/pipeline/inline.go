package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2txt/internal/emoji"
)

// inlineRules removes inline formatting markers, keeping the inner text.
// Order matters: double-marker constructs must run before their
// single-marker counterparts (** before *, ~~ before ~).
var inlineRules = []rule{
	// Bold
	{re: regexp.MustCompile(`\*\*(.*?)\*\*`), sub: "$1"},
	{re: regexp.MustCompile(`__(.*?)__`), sub: "$1"},
	// Italic. Escaped asterisks and underscores were replaced by
	// placeholders in the Normalizer, so they cannot match here.
	{re: regexp.MustCompile(`\*([^*\n]+)\*`), sub: "$1"},
	{re: regexp.MustCompile(`_([^_\n]+)_`), sub: "$1"},
	// Strikethrough
	{re: regexp.MustCompile(`~~(.*?)~~`), sub: "$1"},
	// Inline code
	{re: regexp.MustCompile("`([^`\n]+)`"), sub: "$1"},
	// Subscript and superscript
	{re: regexp.MustCompile(`~([^~\n]+)~`), sub: "$1"},
	{re: regexp.MustCompile(`\^([^^\n]+)\^`), sub: "$1"},
	// Highlight
	{re: regexp.MustCompile(`==(.*?)==`), sub: "$1"},
}

// Precompiled regex patterns for performance.
var (
	// Standalone checkbox markers
	checkedPattern   = regexp.MustCompile(`\[[xX]\]`)
	uncheckedPattern = regexp.MustCompile(`\[ \]`)

	// Emoji shortcode, e.g. :smile: or :+1:
	emojiShortcode = regexp.MustCompile(`:([a-z0-9_+-]+):`)
)

// InlineReducer strips inline formatting markers and substitutes emoji
// shortcodes from the static table. Unknown shortcodes stay literal.
type InlineReducer struct{}

// NewInlineReducer creates an InlineReducer.
func NewInlineReducer() *InlineReducer {
	return &InlineReducer{}
}

// Name returns the stage name.
func (r *InlineReducer) Name() string { return "inline" }

// Transform resolves emoji shortcodes, applies the inline rules, and
// normalizes checkbox markers. Shortcodes go first: their names may
// contain underscores, which the emphasis rules would otherwise strip.
func (r *InlineReducer) Transform(content string) string {
	content = emojiShortcode.ReplaceAllStringFunc(content, func(m string) string {
		name := m[1 : len(m)-1]
		if e, ok := emoji.Lookup(name); ok {
			return e
		}
		// Unknown shortcode stays literal; hide its underscores from
		// the emphasis rules below.
		return strings.ReplaceAll(m, "_", placeholderFor('_'))
	})

	content = applyRules(content, inlineRules)

	// Checkboxes keep placeholder brackets so the LinkReducer's
	// residual-bracket rule leaves them alone.
	content = checkedPattern.ReplaceAllString(content, checkedBox)
	return uncheckedPattern.ReplaceAllString(content, uncheckedBox)
}
