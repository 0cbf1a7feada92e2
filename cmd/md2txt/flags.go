package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2txt command.
type cliFlags struct {
	config       string
	output       string
	workers      int
	preserveHTML bool
	reflow       bool
	debug        bool
	quiet        bool
	verbose      bool
	version      bool
}

// parseFlags parses command-line flags and returns the positional inputs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2txt", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.preserveHTML, "preserve-html", false, "keep HTML comments and tags")
	fs.BoolVar(&f.reflow, "reflow", false, "join soft-wrapped lines into paragraphs")
	fs.BoolVar(&f.debug, "debug", false, "dump per-stage snapshots to stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
