package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
	"github.com/alnah/go-md2txt/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read markdown input")
	ErrWriteOutput        = errors.New("failed to write text output")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Worker sizing constants.
const (
	minWorkers = 1
	maxWorkers = 8
	cpuDivisor = 2
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(flags *cliFlags, inputs []string) error {
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	if flags.preserveHTML {
		cfg.Convert.PreserveHTML = true
	}
	if flags.reflow {
		cfg.Convert.Reflow = true
	}

	conv := md2txt.NewConverter(
		md2txt.WithPreserveHTML(cfg.Convert.PreserveHTML),
		md2txt.WithPreserveLineBreaks(!cfg.Convert.Reflow),
		md2txt.WithDebug(flags.debug),
	)

	// No positional inputs: fall back to the configured input directory,
	// then to stdin.
	if len(inputs) == 0 {
		if cfg.Input.DefaultDir != "" {
			inputs = []string{cfg.Input.DefaultDir}
		} else {
			return convertStream(conv, flags, os.Stdin, os.Stdout)
		}
	}

	files, err := discoverFiles(inputs, flags.output, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}

	if flags.output == "-" {
		// Stdout mode: sequential, in input order.
		for _, f := range files {
			in, err := os.Open(f.InputPath) // #nosec G304 -- user-provided path
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadInput, err)
			}
			err = convertStream(conv, flags, in, os.Stdout)
			_ = in.Close()
			if err != nil {
				return err
			}
		}
		return nil
	}

	results := convertBatch(conv, flags, files)
	return reportResults(flags, results)
}

// convertStream converts a single reader to a writer.
func convertStream(conv *md2txt.Converter, flags *cliFlags, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	res, err := conv.ConvertWithResult(string(data))
	if err != nil {
		return err
	}
	dumpSnapshots(flags, res)

	if _, err := io.WriteString(out, res.Text+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// discoverFiles expands positional arguments into conversion jobs.
// Directories contribute their .md/.markdown files (non-recursive, sorted);
// explicit files must carry a markdown extension.
func discoverFiles(inputs []string, output, defaultOutDir string) ([]FileToConvert, error) {
	var paths []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(in)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
			}
			var found []string
			for _, e := range entries {
				if !e.IsDir() && fileutil.IsMarkdownFile(e.Name()) {
					found = append(found, filepath.Join(in, e.Name()))
				}
			}
			sort.Strings(found)
			paths = append(paths, found...)
			continue
		}
		if !fileutil.IsMarkdownFile(in) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, in)
		}
		paths = append(paths, in)
	}

	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	files := make([]FileToConvert, len(paths))
	for i, p := range paths {
		out, err := resolveOutputPath(p, output, defaultOutDir, len(paths) > 1)
		if err != nil {
			return nil, err
		}
		files[i] = FileToConvert{InputPath: p, OutputPath: out}
	}
	return files, nil
}

// resolveOutputPath determines where a converted file is written.
// Precedence: explicit --output (file for a single input, directory
// otherwise), configured default output directory, sibling .txt file.
func resolveOutputPath(inputPath, output, defaultOutDir string, multi bool) (string, error) {
	txtName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".txt"

	switch {
	case output != "" && output != "-":
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			return filepath.Join(output, txtName), nil
		}
		if multi {
			// Multiple inputs need a directory; create it.
			if err := os.MkdirAll(output, dirPermissions); err != nil {
				return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
			return filepath.Join(output, txtName), nil
		}
		return output, nil

	case defaultOutDir != "":
		if err := os.MkdirAll(defaultOutDir, dirPermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return filepath.Join(defaultOutDir, txtName), nil

	default:
		return filepath.Join(filepath.Dir(inputPath), txtName), nil
	}
}

// convertBatch processes files concurrently with a bounded worker pool.
// A single converter is shared: conversion is pure and snapshots are
// call-scoped, so concurrent calls never interfere.
func convertBatch(conv *md2txt.Converter, flags *cliFlags, files []FileToConvert) []ConversionResult {
	workers := resolveWorkerCount(flags.workers)
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = convertFile(conv, flags, files[i])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertFile converts one file and writes its output.
func convertFile(conv *md2txt.Converter, flags *cliFlags, f FileToConvert) ConversionResult {
	start := time.Now()
	res := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return res
	}

	converted, err := conv.ConvertWithResult(string(data))
	if err != nil {
		res.Err = fmt.Errorf("converting %s: %w", f.InputPath, err)
		return res
	}
	dumpSnapshots(flags, converted)

	if err := os.WriteFile(f.OutputPath, []byte(converted.Text+"\n"), filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}

	res.Duration = time.Since(start)
	return res
}

// reportResults prints per-file outcomes and aggregates failures.
func reportResults(flags *cliFlags, results []ConversionResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "ok   %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else if !flags.quiet {
			fmt.Fprintf(os.Stderr, "ok   %s\n", r.OutputPath)
		}
	}
	return errors.Join(errs...)
}

// dumpSnapshots writes per-stage snapshots to stderr in debug mode.
func dumpSnapshots(flags *cliFlags, res *md2txt.ConvertResult) {
	if !flags.debug {
		return
	}
	for _, s := range res.Snapshots {
		fmt.Fprintf(os.Stderr, "--- after %s ---\n%s\n", s.Stage, s.Text)
	}
}

// resolveWorkerCount determines the worker count for batch conversion.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func resolveWorkerCount(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
