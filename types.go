package md2txt

// Snapshot records the document text after one named pipeline stage.
// Snapshots exist for diagnostics only; capturing them never changes the
// conversion result.
type Snapshot struct {
	Stage string // stage name, e.g. "normalize", "tables", "cleanup"
	Text  string // full document text after the stage ran
}

// ConvertResult contains the outcome of a single conversion.
type ConvertResult struct {
	// Text is the plain-text output, identical to what Convert returns.
	Text string

	// Metadata holds the parsed YAML frontmatter of the document, if any.
	// Parsing is best-effort: invalid frontmatter leaves Metadata nil and
	// the block is still stripped from the output.
	Metadata map[string]any

	// Snapshots is the per-stage debug log, populated only when the
	// converter was created with WithDebug(true). It is returned per call
	// rather than stored on the converter, so concurrent calls never
	// interfere.
	Snapshots []Snapshot
}

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	preserveHTML       bool
	preserveLineBreaks bool
	debug              bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithPreserveHTML controls whether HTML comments and tags survive
// conversion. Default false: HTML is stripped, keeping enclosed text.
func WithPreserveHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preserveHTML = enabled
	}
}

// WithPreserveLineBreaks controls the final line-break policy.
// Default true: single newlines are kept as-is. When false, soft-wrapped
// lines inside a paragraph are joined with spaces; paragraph breaks
// (blank lines) always survive.
func WithPreserveLineBreaks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preserveLineBreaks = enabled
	}
}

// WithDebug enables per-stage snapshot capture on ConvertWithResult.
// It has no effect on the converted text.
func WithDebug(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.debug = enabled
	}
}
