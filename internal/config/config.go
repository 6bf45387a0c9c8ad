// Package config manages cascade run configuration.
//
// Settings come from built-in defaults, optionally overlaid by a YAML file
// named by --config or $CASCADE_CONFIG, and finally by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "CASCADE_CONFIG"

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings for one run.
type Config struct {
	// Sheet is the input worksheet; empty selects the first one.
	Sheet string `yaml:"sheet"`

	// OutputSheet names the worksheet written to XLSX output.
	OutputSheet string `yaml:"output_sheet"`

	// Highlight is the fill color for synthesized names.
	Highlight string `yaml:"highlight"`

	// Comma is the delimiter for CSV input and output.
	Comma string `yaml:"csv_comma"`

	// Suffix is appended to the input base name to derive the output path.
	Suffix string `yaml:"suffix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputSheet: "cascade",
		Highlight:   "#FDFD96",
		Comma:       ",",
		Suffix:      "-cascade",
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// falls back to $CASCADE_CONFIG; if that is unset too, Default is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputSheet) == "" {
		return fmt.Errorf("%w: output_sheet must not be empty", ErrInvalidConfig)
	}
	if !hexColor.MatchString(c.Highlight) {
		return fmt.Errorf("%w: highlight %q is not a #RRGGBB color", ErrInvalidConfig, c.Highlight)
	}
	if utf8.RuneCountInString(c.Comma) != 1 {
		return fmt.Errorf("%w: csv_comma %q must be a single character", ErrInvalidConfig, c.Comma)
	}
	if c.Comma == "\"" || c.Comma == "\n" || c.Comma == "\r" {
		return fmt.Errorf("%w: csv_comma %q is not a valid delimiter", ErrInvalidConfig, c.Comma)
	}
	return nil
}

// CommaRune returns Comma as a rune, or ',' when unset.
func (c Config) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Comma)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// DefaultOutputPath derives the output path next to input:
// <dir>/<base><suffix><ext>. ext is the format extension without any
// compression suffix, so "a.csv.gz" becomes "a-cascade.csv". Macro-enabled
// workbooks are written without macros, so ".xlsm" becomes ".xlsx".
func (c Config) DefaultOutputPath(input, ext string) string {
	dir, file := filepath.Split(input)
	base := file
	if i := strings.LastIndex(strings.ToLower(file), strings.ToLower(ext)); ext != "" && i > 0 {
		base = file[:i]
	}
	if strings.EqualFold(ext, ".xlsm") {
		ext = ".xlsx"
	}
	return filepath.Join(dir, base+c.Suffix+ext)
}
