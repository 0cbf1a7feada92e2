package main

import (
	"fmt"
	"io"
)

// printUsage writes the command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `md2txt - convert Markdown to clean plain text

Usage:
  md2txt [flags] [file.md|directory ...]

With no inputs, reads Markdown from stdin and writes text to stdout.
Directories contribute their .md/.markdown files (non-recursive).

Flags:
  -o, --output string    output file or directory (- = stdout)
  -c, --config string    config file name or path
  -w, --workers int      parallel workers (0 = auto)
      --preserve-html    keep HTML comments and tags
      --reflow           join soft-wrapped lines into paragraphs
      --debug            dump per-stage snapshots to stderr
  -q, --quiet            only show errors
  -v, --verbose          show per-file progress
      --version          print version and exit

Examples:
  md2txt README.md
  md2txt docs/ -o out/
  cat notes.md | md2txt --reflow
`)
}
