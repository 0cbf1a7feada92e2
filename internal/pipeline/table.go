package pipeline

import (
	"regexp"
	"strings"
)

// tableSeparator matches a header-separator row: cells of dashes with
// optional alignment colons between pipes. Alignment hints carry no
// meaning in plain text, so the row itself is dropped.
// A single dash cell is allowed: one-column tables are rare but legal.
// Transform only consults this pattern for lines that contain a pipe, so
// plain --- rules never match.
var tableSeparator = regexp.MustCompile(`^\s*\|?\s*:?-+:?\s*(?:\|\s*:?-+:?\s*)*\|?\s*$`)

// TableReducer converts pipe-delimited table rows into plain rows whose
// cells are joined by two spaces. It walks the text line by line with a
// single "inside a table" flag plus one deferred header row.
//
// A pipe row seen before any separator is held back: it is either the
// header of a table (emitted as joined cells once the separator confirms
// it) or a stray pipe line (passed through verbatim when no separator
// follows).
type TableReducer struct{}

// NewTableReducer creates a TableReducer.
func NewTableReducer() *TableReducer {
	return &TableReducer{}
}

// Name returns the stage name.
func (t *TableReducer) Name() string { return "tables" }

// Transform rewrites table rows and drops separator rows. A header-only
// table (no body rows) still emits its header.
func (t *TableReducer) Transform(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	inTable := false
	pending := ""
	havePending := false

	flushPending := func() {
		if !havePending {
			return
		}
		if inTable {
			out = append(out, joinCells(pending))
		} else {
			out = append(out, pending)
		}
		havePending = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "|") && tableSeparator.MatchString(line):
			// Separator confirms the deferred row as a table header.
			inTable = true

		case strings.HasPrefix(trimmed, "|"):
			if inTable {
				flushPending()
				out = append(out, joinCells(line))
			} else {
				// Possibly a header awaiting its separator; defer.
				if havePending {
					out = append(out, pending)
				}
				pending = line
				havePending = true
			}

		default:
			flushPending()
			inTable = false
			out = append(out, line)
		}
	}
	flushPending()

	return strings.Join(out, "\n")
}

// joinCells splits a pipe row into cells, trims them, discards the empty
// leading and trailing cells produced by edge pipes, and joins the rest
// with a double space.
func joinCells(line string) string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return strings.Join(cells, "  ")
}
