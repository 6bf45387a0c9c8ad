package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
	if cfg.OutputSheet != "cascade" {
		t.Errorf("OutputSheet = %q, want cascade", cfg.OutputSheet)
	}
	if cfg.CommaRune() != ',' {
		t.Errorf("CommaRune() = %q, want ','", cfg.CommaRune())
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cascade.yaml")
	content := "sheet: geo\nhighlight: \"#FFCC2F\"\ncsv_comma: \";\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Sheet != "geo" {
		t.Errorf("Sheet = %q, want geo", cfg.Sheet)
	}
	if cfg.Highlight != "#FFCC2F" {
		t.Errorf("Highlight = %q, want #FFCC2F", cfg.Highlight)
	}
	if cfg.CommaRune() != ';' {
		t.Errorf("CommaRune() = %q, want ';'", cfg.CommaRune())
	}
	// Unset keys keep their defaults.
	if cfg.OutputSheet != "cascade" {
		t.Errorf("OutputSheet = %q, want cascade", cfg.OutputSheet)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "env.yaml")
	if err := os.WriteFile(path, []byte("suffix: -out\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Suffix != "-out" {
		t.Errorf("Suffix = %q, want -out", cfg.Suffix)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "highlight: yellow\n"},
		{"empty sheet", "output_sheet: \"\"\n"},
		{"long comma", "csv_comma: \";;\"\n"},
		{"quote comma", "csv_comma: '\"'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cascade.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cascade.yaml")
	if err := os.WriteFile(path, []byte("sheet: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cfg := Default()
	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{filepath.Join("data", "geo.xlsx"), ".xlsx", filepath.Join("data", "geo-cascade.xlsx")},
		{"geo.csv.gz", ".csv", "geo-cascade.csv"},
		{"GEO.CSV", ".csv", "GEO-cascade.csv"},
		{"my.geo.tsv.zst", ".tsv", "my.geo-cascade.tsv"},
		{"macros.xlsm", ".xlsm", "macros-cascade.xlsx"},
		{"MACROS.XLSM", ".xlsm", "MACROS-cascade.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cfg.DefaultOutputPath(tt.input, tt.ext); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
