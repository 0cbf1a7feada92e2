package pipeline

import "regexp"

// Stage is one ordered text-to-text transformation in the conversion
// pipeline. Transform must be pure: same input, same output, no state.
type Stage interface {
	Name() string
	Transform(content string) string
}

// rule pairs a compiled pattern with its plain-text replacement.
// Exactly one of sub or fn is used; fn wins when set and receives the
// submatch groups of each match (index 0 is the whole match).
type rule struct {
	re  *regexp.Regexp
	sub string
	fn  func(groups []string) string
}

// apply rewrites every match of the rule's pattern in content.
func (r rule) apply(content string) string {
	if r.fn == nil {
		return r.re.ReplaceAllString(content, r.sub)
	}
	return r.re.ReplaceAllStringFunc(content, func(m string) string {
		return r.fn(r.re.FindStringSubmatch(m))
	})
}

// applyRules runs rules in order, each over the full output of the previous.
func applyRules(content string, rules []rule) string {
	for _, r := range rules {
		content = r.apply(content)
	}
	return content
}
