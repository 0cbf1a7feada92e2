package pipeline

import "regexp"

// linkRules removes link, image, and footnote syntax, keeping visible
// label text. Order matters: reference definitions and comment markers
// are invisible content and must go before the link rules can mistake
// them for labels; the residual-bracket rules run last so no stray
// brackets survive.
var linkRules = []rule{
	// Reference-style comment marker: [//]: # (text)
	{re: regexp.MustCompile(`(?m)^\[//\]:[ \t]*#[ \t]*\(.*\)[ \t]*$`), sub: ""},
	// Link-reference definition: [label]: url "title"
	{re: regexp.MustCompile(`(?m)^[ \t]{0,3}\[[^\]^][^\]]*\]:[ \t].*$`), sub: ""},
	// Footnote definition, including its indented body
	{re: regexp.MustCompile(`(?m)^\[\^[^\]]+\]:.*(?:\n(?:    |\t).*)*`), sub: ""},
	// Footnote reference
	{re: regexp.MustCompile(`\[\^[^\]]+\]`), sub: ""},
	// Images (inline and reference style): keep alt text
	{re: regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`), sub: "$1"},
	{re: regexp.MustCompile(`!\[([^\]]*)\]\[[^\]]*\]`), sub: "$1"},
	// Links (inline and reference style): keep label
	{re: regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), sub: "$1"},
	{re: regexp.MustCompile(`\[([^\]]*)\]\[[^\]]*\]`), sub: "$1"},
	// Autolinks: keep the URL text
	{re: regexp.MustCompile(`<((?:https?://|mailto:|www\.)[^ <>]+)>`), sub: "$1"},
	// Leftover numeric reference markers
	{re: regexp.MustCompile(`\[\d+\]`), sub: ""},
	// Any residual bracketed text: keep the inner content
	{re: regexp.MustCompile(`\[([^\[\]]*)\]`), sub: "$1"},
}

// LinkReducer removes link, image, footnote, and reference syntax.
type LinkReducer struct{}

// NewLinkReducer creates a LinkReducer.
func NewLinkReducer() *LinkReducer {
	return &LinkReducer{}
}

// Name returns the stage name.
func (l *LinkReducer) Name() string { return "links" }

// Transform applies the link rules in order.
func (l *LinkReducer) Transform(content string) string {
	return applyRules(content, linkRules)
}
