package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/danieljhkim/cascade/internal/clock"
	"github.com/danieljhkim/cascade/internal/config"
	"github.com/danieljhkim/cascade/internal/engine"
	"github.com/danieljhkim/cascade/internal/fsops"
	"github.com/danieljhkim/cascade/internal/hash"
	"github.com/danieljhkim/cascade/internal/logging"
)

// newEngine creates an engine with real implementations of all dependencies.
// Logs go to the command's stderr.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewText(cmd.ErrOrStderr(), level)

	return engine.New(
		fsops.NewRealFS(),
		hash.NewSHA256Hasher(),
		clock.RealClock{},
		cfg,
		logger,
	), nil
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes v as YAML.
func outputYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
