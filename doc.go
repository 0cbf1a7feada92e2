// Package md2txt converts Markdown documents to clean plain text.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2txt.NewConverter()
//	text, err := conv.Convert("# Hello\n\nThis is **bold**.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
//
// The converter strips Markdown syntax while keeping readable structure:
// paragraph breaks survive, list items stay indented, and table cells are
// joined with double spaces. It is a single-pass rewrite pipeline, not a
// parser — malformed Markdown degrades gracefully instead of erroring.
//
// # Conversion Pipeline
//
// Conversion runs the input through ordered text-to-text stages:
//
//  1. Normalization (line endings, backslash escapes, entity pre-decoding)
//  2. Frontmatter stripping and nested blockquote/list flattening
//  3. Table and list reduction
//  4. HTML stripping (optional)
//  5. Inline formatting removal and emoji shortcode substitution
//  6. Block reduction (headers, code fences, horizontal rules)
//  7. Link, image, footnote, and math delimiter removal
//  8. Final cleanup (entities, blank lines, line-break policy)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2txt.NewConverter(
//	    md2txt.WithPreserveHTML(true),        // keep HTML tags verbatim
//	    md2txt.WithPreserveLineBreaks(false), // reflow soft-wrapped lines
//	)
//
// # Inspecting Stages
//
// With WithDebug(true), ConvertWithResult returns a snapshot of the text
// after each stage, useful for diagnosing why a construct was (or was not)
// rewritten:
//
//	conv := md2txt.NewConverter(md2txt.WithDebug(true))
//	res, err := conv.ConvertWithResult(markdown)
//	for _, s := range res.Snapshots {
//	    fmt.Printf("after %s:\n%s\n", s.Stage, s.Text)
//	}
//
// Snapshots are returned per call rather than stored on the converter, so a
// single Converter is safe for concurrent use.
//
// # Limits
//
// Inputs larger than MaxInputSize (10 MiB) are rejected with
// ErrSizeLimitExceeded before any processing. Empty input returns an empty
// string and no error.
package md2txt
