// Package pipeline implements the ordered Markdown-to-plain-text stages.
//
// Each stage is a pure text-to-text transformation over the whole document:
//   - Normalizer: line endings, backslash escapes, entity pre-decoding
//   - Frontmatter: YAML frontmatter stripping (and metadata extraction)
//   - NestedStructure: fixed-point blockquote and nested-list flattening
//   - TableReducer: pipe tables to double-space-joined rows
//   - ListReducer: list markers to indented plain lines
//   - HTMLStripper: comment and tag removal
//   - InlineReducer: emphasis, code, highlight, checkbox, emoji shortcodes
//   - BlockReducer: headers, code fences, indented code, horizontal rules
//   - LinkReducer: links, images, footnotes, reference definitions
//   - MathReducer: math delimiters
//   - Cleanup: entity decoding, whitespace normalization, line-break policy
//
// Stages run strictly in the order above and share no state; the document
// string is the only value threaded between them. Malformed constructs are
// left partially transformed rather than rejected: the pipeline favors
// readable best-effort output over strict parsing.
package pipeline
