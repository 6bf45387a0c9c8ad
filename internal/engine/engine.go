// Package engine runs cascade builds end to end.
//
// The engine is the layer between CLI commands and the core: it reads the
// input spreadsheet through fsops and table, hands headers and records to
// the cascade package, and writes the exported rows back out. The core
// itself performs no I/O.
//
// Key operations:
//   - Build: read, convert, write, report
//   - Inspect: read and convert, return the schema and tree for display
package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/clock"
	"github.com/danieljhkim/cascade/internal/config"
	"github.com/danieljhkim/cascade/internal/fsops"
	"github.com/danieljhkim/cascade/internal/hash"
	"github.com/danieljhkim/cascade/internal/logging"
	"github.com/danieljhkim/cascade/internal/table"
)

// Engine orchestrates cascade runs. It is the main API surface called by
// the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	cfg    config.Config
	logger logging.Logger

	newRunID func() string
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	cfg config.Config,
	logger logging.Logger,
) *Engine {
	return &Engine{
		fs:       fs,
		hasher:   hasher,
		clock:    clk,
		cfg:      cfg,
		logger:   logging.OrNop(logger),
		newRunID: uuid.NewString,
	}
}

// source is a decoded input spreadsheet.
type source struct {
	kind    table.Kind
	sheet   *table.Sheet
	sheets  []string
	digest  string
	records []cascade.Record
}

// load reads and decodes the input file.
func (e *Engine) load(ctx context.Context, input, sheet string) (*source, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: input path is required", ErrValidation)
	}

	kind, err := table.Detect(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	exists, err := e.fs.Exists(input)
	if err != nil {
		return nil, fmt.Errorf("failed to check input: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: input %s", ErrNotFound, input)
	}

	data, err := e.fs.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	digest, err := e.hasher.Hash(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to hash input: %w", err)
	}

	var sheets []string
	if kind.Format == table.FormatXLSX {
		if sheet == "" {
			sheet = e.cfg.Sheet
		}
		sheets, err = table.SheetNames(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to list sheets of %s: %w", input, err)
		}
	} else if sheet != "" {
		return nil, fmt.Errorf("%w: sheet %q given for %s input %s", ErrValidation, sheet, kind.Format, input)
	}
	decoded, err := table.Read(bytes.NewReader(data), table.ReadOptions{
		Kind:  kind,
		Sheet: sheet,
		Comma: e.cfg.CommaRune(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", input, err)
	}

	records := make([]cascade.Record, len(decoded.Rows))
	for i, row := range decoded.Rows {
		records[i] = cascade.NewRecord(row)
	}

	return &source{kind: kind, sheet: decoded, sheets: sheets, digest: digest, records: records}, nil
}
