package pipeline

import "regexp"

// mathRules strip math delimiters, keeping the expression text verbatim.
// Nothing is evaluated or rendered.
var mathRules = []rule{
	// Block math $$...$$
	{re: regexp.MustCompile(`(?s)\$\$(.*?)\$\$`), sub: "$1"},
	// Inline math $...$
	{re: regexp.MustCompile(`\$([^$\n]+)\$`), sub: "$1"},
	// LaTeX-style \(...\) and \[...\]. The normalizer already turned the
	// escaped delimiters into placeholder runes, so the rules match those.
	{re: regexp.MustCompile(`(?s)` + placeholderFor('(') + `(.*?)` + placeholderFor(')')), sub: "$1"},
	{re: regexp.MustCompile(`(?s)` + placeholderFor('[') + `(.*?)` + placeholderFor(']')), sub: "$1"},
}

// MathReducer removes math delimiters, keeping inner expression text.
type MathReducer struct{}

// NewMathReducer creates a MathReducer.
func NewMathReducer() *MathReducer {
	return &MathReducer{}
}

// Name returns the stage name.
func (m *MathReducer) Name() string { return "math" }

// Transform applies the math rules in order.
func (m *MathReducer) Transform(content string) string {
	return applyRules(content, mathRules)
}
