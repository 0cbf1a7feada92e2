package pipeline

import (
	"regexp"

	"github.com/alnah/go-md2txt/internal/yamlutil"
)

// frontmatterBlock matches a YAML frontmatter fence at the very start of
// the document: --- delimiters around a (possibly empty) body. The closing
// fence must start a line of its own, or content that merely ends in ---
// would close the block early.
var frontmatterBlock = regexp.MustCompile(`(?ms)\A---[ \t]*\n(.*?)\n?^---[ \t]*(?:\n|\z)`)

// Frontmatter strips a leading YAML frontmatter block from the document.
// The block is metadata, not content, and never appears in the output.
type Frontmatter struct{}

// NewFrontmatter creates a Frontmatter stage.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{}
}

// Name returns the stage name.
func (f *Frontmatter) Name() string { return "frontmatter" }

// Transform removes the frontmatter block, discarding its metadata.
func (f *Frontmatter) Transform(content string) string {
	body, _ := f.Extract(content)
	return body
}

// Extract removes the frontmatter block and returns its parsed body.
// Parsing is best-effort: a block that is not valid YAML is still stripped,
// with a nil metadata map.
func (f *Frontmatter) Extract(content string) (string, map[string]any) {
	m := frontmatterBlock.FindStringSubmatch(content)
	if m == nil {
		return content, nil
	}

	body := content[len(m[0]):]

	var meta map[string]any
	if err := yamlutil.Unmarshal([]byte(m[1]), &meta); err != nil {
		return body, nil
	}
	return body, meta
}
