package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "conv.yaml", `
input:
  defaultDir: docs
output:
  defaultDir: out
convert:
  preserveHtml: true
  reflow: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	want := &Config{
		Input:   InputConfig{DefaultDir: "docs"},
		Output:  OutputConfig{DefaultDir: "out"},
		Convert: ConvertConfig{PreserveHTML: true, Reflow: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
	}{
		{
			name:       "empty name",
			nameOrPath: "",
			wantErr:    ErrEmptyConfigName,
		},
		{
			name:       "missing path",
			nameOrPath: filepath.Join(t.TempDir(), "missing.yaml"),
			wantErr:    ErrConfigNotFound,
		},
		{
			name:       "unresolvable name",
			nameOrPath: "no-such-config-name",
			wantErr:    ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.nameOrPath)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.nameOrPath, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "typo.yaml", "convret:\n  reflow: true\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want %v", err, ErrConfigParse)
	}
}
