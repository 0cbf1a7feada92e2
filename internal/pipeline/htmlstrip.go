package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// HTML comments, including multi-line
	htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)

	// HTML tags. The name must be a bare element name so that autolinks
	// like <https://example.com> are not swallowed; the LinkReducer
	// handles those later.
	htmlTag = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(?:[ \t\n][^<>]*)?/?>`)
)

// HTMLStripper removes HTML comments and tags, keeping tag-enclosed text.
// The stage is skipped entirely when the converter preserves HTML.
type HTMLStripper struct{}

// NewHTMLStripper creates an HTMLStripper.
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{}
}

// Name returns the stage name.
func (h *HTMLStripper) Name() string { return "html" }

// Transform removes comments first (their bodies may contain tag-like
// text), then remaining tags.
func (h *HTMLStripper) Transform(content string) string {
	content = htmlComment.ReplaceAllString(content, "")
	return htmlTag.ReplaceAllString(content, "")
}
