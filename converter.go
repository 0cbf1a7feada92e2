package md2txt

import (
	"fmt"

	"github.com/alnah/go-md2txt/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure every stage satisfies the Stage contract at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.Stage = (*pipeline.Normalizer)(nil)
	_ pipeline.Stage = (*pipeline.Frontmatter)(nil)
	_ pipeline.Stage = (*pipeline.NestedStructure)(nil)
	_ pipeline.Stage = (*pipeline.TableReducer)(nil)
	_ pipeline.Stage = (*pipeline.ListReducer)(nil)
	_ pipeline.Stage = (*pipeline.HTMLStripper)(nil)
	_ pipeline.Stage = (*pipeline.InlineReducer)(nil)
	_ pipeline.Stage = (*pipeline.BlockReducer)(nil)
	_ pipeline.Stage = (*pipeline.LinkReducer)(nil)
	_ pipeline.Stage = (*pipeline.MathReducer)(nil)
	_ pipeline.Stage = (*pipeline.Cleanup)(nil)
)

// Converter runs the markdown-to-plain-text pipeline.
// Create with NewConverter and reuse freely: a Converter holds only
// immutable configuration and precompiled stages, so it is safe for
// concurrent use.
type Converter struct {
	cfg converterConfig

	normalizer   *pipeline.Normalizer
	frontmatter  *pipeline.Frontmatter
	nested       *pipeline.NestedStructure
	tables       *pipeline.TableReducer
	lists        *pipeline.ListReducer
	htmlStripper *pipeline.HTMLStripper // nil when preserveHTML is set
	inline       *pipeline.InlineReducer
	blocks       *pipeline.BlockReducer
	links        *pipeline.LinkReducer
	math         *pipeline.MathReducer
	cleanup      *pipeline.Cleanup
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g. WithPreserveHTML, WithDebug).
// Construction never fails.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{preserveLineBreaks: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.normalizer = pipeline.NewNormalizer()
	c.frontmatter = pipeline.NewFrontmatter()
	c.nested = pipeline.NewNestedStructure()
	c.tables = pipeline.NewTableReducer()
	c.lists = pipeline.NewListReducer()
	if !c.cfg.preserveHTML {
		c.htmlStripper = pipeline.NewHTMLStripper()
	}
	c.inline = pipeline.NewInlineReducer()
	c.blocks = pipeline.NewBlockReducer()
	c.links = pipeline.NewLinkReducer()
	c.math = pipeline.NewMathReducer()
	c.cleanup = pipeline.NewCleanup(c.cfg.preserveLineBreaks)

	return c
}

// Convert transforms markdown input into plain text.
// Empty input returns an empty string and no error. Inputs larger than
// MaxInputSize fail with ErrSizeLimitExceeded before any processing.
func (c *Converter) Convert(input string) (string, error) {
	res, err := c.ConvertWithResult(input)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ConvertWithResult is Convert plus frontmatter metadata and, when the
// converter was created with WithDebug(true), per-stage snapshots.
func (c *Converter) ConvertWithResult(input string) (*ConvertResult, error) {
	if input == "" {
		return &ConvertResult{}, nil
	}
	if len(input) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrSizeLimitExceeded, len(input), MaxInputSize)
	}

	res := &ConvertResult{}
	snap := func(stage, text string) {
		if c.cfg.debug {
			res.Snapshots = append(res.Snapshots, Snapshot{Stage: stage, Text: text})
		}
	}

	content := c.normalizer.Transform(input)
	snap(c.normalizer.Name(), content)

	content, res.Metadata = c.frontmatter.Extract(content)
	snap(c.frontmatter.Name(), content)

	content = c.nested.Transform(content)
	snap(c.nested.Name(), content)

	content = c.tables.Transform(content)
	snap(c.tables.Name(), content)

	content = c.lists.Transform(content)
	snap(c.lists.Name(), content)

	if c.htmlStripper != nil {
		content = c.htmlStripper.Transform(content)
		snap(c.htmlStripper.Name(), content)
	}

	content = c.inline.Transform(content)
	snap(c.inline.Name(), content)

	content = c.blocks.Transform(content)
	snap(c.blocks.Name(), content)

	content = c.links.Transform(content)
	snap(c.links.Name(), content)

	content = c.math.Transform(content)
	snap(c.math.Name(), content)

	content = c.cleanup.Transform(content)
	snap(c.cleanup.Name(), content)

	res.Text = content
	return res, nil
}
