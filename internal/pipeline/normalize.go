package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// escapable is the fixed set of punctuation a backslash can escape.
// The byte's index in this string determines its placeholder rune.
const escapable = "\\`*_{}[]()#+-.!$"

// placeholderBase is the first rune of the Unicode Private Use Area range
// used to hide escaped punctuation from the pattern-matching stages.
// PUA runes never occur in real documents and pass through every stage
// untouched; Cleanup restores them to the bare characters at the end.
const placeholderBase = 0xE010

// placeholderFor returns the placeholder rune for an escapable byte.
// Callers must only pass bytes present in escapable.
func placeholderFor(ch byte) string {
	return string(rune(placeholderBase + strings.IndexByte(escapable, ch)))
}

// Checkbox markers use dedicated bracket runes, distinct from the escape
// placeholders, so neither the link stage's residual-bracket rule nor the
// math stage's display-math rule can touch them.
const (
	checkboxOpenRune  = 0xE000
	checkboxCloseRune = 0xE001
)

var (
	checkedBox   = string(rune(checkboxOpenRune)) + "✓" + string(rune(checkboxCloseRune))
	uncheckedBox = string(rune(checkboxOpenRune)) + " " + string(rune(checkboxCloseRune))
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Backslash escape followed by escapable punctuation
	escapedPunct = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!$])`)

	// A complete HTML entity: named, decimal, or hex
	entityCandidate = regexp.MustCompile(`&(?:#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6}|[a-zA-Z][a-zA-Z0-9]*);`)
)

// Normalizer unifies line endings, resolves backslash escapes, and
// opportunistically pre-decodes HTML entities. It must run first: escaped
// markers have to be hidden before any structural pattern matching.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Name returns the stage name.
func (n *Normalizer) Name() string { return "normalize" }

// Transform applies line-ending unification, escape resolution, and
// best-effort entity decoding. Entities that fail to decode are left
// verbatim; a second, authoritative entity pass runs in Cleanup.
func (n *Normalizer) Transform(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = escapedPunct.ReplaceAllStringFunc(content, func(m string) string {
		// m is backslash + one escapable byte
		return placeholderFor(m[1])
	})
	return entityCandidate.ReplaceAllStringFunc(content, decodeEntity)
}

// decodeEntity decodes one complete &...; candidate in isolation.
// html.UnescapeString also resolves legacy semicolon-less entities, which
// would turn an unknown name with a legacy prefix (&notarealentity;) into
// garbage; such a partial decode leaves the trailing semicolon behind, so
// the candidate is kept literal in that case.
func decodeEntity(m string) string {
	decoded := html.UnescapeString(m)
	if decoded != ";" && strings.HasSuffix(decoded, ";") {
		return m
	}
	return decoded
}
