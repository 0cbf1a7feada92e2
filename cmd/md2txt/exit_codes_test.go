package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "file not found", err: os.ErrNotExist, expected: ExitIO},
		{name: "permission denied", err: os.ErrPermission, expected: ExitIO},
		{name: "read failure", err: ErrReadInput, expected: ExitIO},
		{name: "write failure", err: ErrWriteOutput, expected: ExitIO},
		{name: "no input", err: ErrNoInput, expected: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, expected: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, expected: ExitUsage},
		{name: "empty config name", err: config.ErrEmptyConfigName, expected: ExitUsage},
		{name: "size limit", err: md2txt.ErrSizeLimitExceeded, expected: ExitUsage},
		{name: "bad extension", err: ErrInvalidExtension, expected: ExitUsage},
		{name: "bad worker count", err: ErrInvalidWorkerCount, expected: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), expected: ExitGeneral},
		{
			name:     "wrapped error unwraps",
			err:      fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			expected: ExitUsage,
		},
		{
			name:     "joined errors use first match",
			err:      errors.Join(errors.New("other"), ErrWriteOutput),
			expected: ExitIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
