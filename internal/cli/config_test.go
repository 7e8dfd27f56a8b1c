package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/report"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Output != report.DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, report.DefaultOutput)
	}
	if cfg.Format != formatText {
		t.Errorf("Format = %q, want %q", cfg.Format, formatText)
	}
	if cfg.FailOnViolation {
		t.Error("FailOnViolation should default to false")
	}
}

func TestLoadConfigFromProjectDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
fail_on_violation = true
format = "json"
workers = 4

[source]
exclude = ["generated", "fixtures"]
`)

	cfg, err := loadConfig("", dir)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !cfg.FailOnViolation {
		t.Error("FailOnViolation = false, want true")
	}
	if cfg.Format != formatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, formatJSON)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !slices.Equal(cfg.Source.Exclude, []string{"generated", "fixtures"}) {
		t.Errorf("Source.Exclude = %v", cfg.Source.Exclude)
	}
	if cfg.Output != report.DefaultOutput {
		t.Errorf("Output = %q, want the default", cfg.Output)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `output = "metrics.txt"`)

	// The project directory's own config is ignored when a path is given.
	dir := t.TempDir()
	writeConfig(t, dir, `output = "ignored.txt"`)

	cfg, err := loadConfig(path, dir)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Output != "metrics.txt" {
		t.Errorf("Output = %q, want metrics.txt", cfg.Output)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `format = `},
		{"unknown format", `format = "xml"`},
		{"negative workers", `workers = -1`},
		{"empty output", `output = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := loadConfig("", dir)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
