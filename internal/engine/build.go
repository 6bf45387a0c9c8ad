package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/clock"
	"github.com/danieljhkim/cascade/internal/table"
)

// Build converts req.Input into a cascade choice sheet.
//
// The output format follows the output extension. Cells holding a name
// synthesized by deduplication are highlighted in XLSX output.
func (e *Engine) Build(ctx context.Context, req *BuildRequest) (*BuildResult, error) {
	runID := e.newRunID()
	logger := e.logger.With("run", runID)
	start := e.clock.Now()

	src, err := e.load(ctx, req.Input, req.Sheet)
	if err != nil {
		return nil, err
	}
	logger.Info("read input",
		"input", req.Input,
		"format", src.kind.Format.String(),
		"sheet", src.sheet.Name,
		"rows", len(src.records))

	output := req.Output
	if output == "" {
		output = e.cfg.DefaultOutputPath(req.Input, src.kind.Ext)
	}
	outKind, err := table.Detect(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if outKind.Compression != table.CompressionNone {
		return nil, fmt.Errorf("%w: compressed output is not supported: %s", ErrValidation, output)
	}
	same, err := e.fs.SameFile(req.Input, output)
	if err != nil {
		return nil, fmt.Errorf("failed to compare paths: %w", err)
	}
	if same {
		return nil, fmt.Errorf("%w: output %s would overwrite the input", ErrValidation, output)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := cascade.Build(src.sheet.Headers, src.records, cascade.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	rows := c.Rows()

	result := &BuildResult{
		RunID:       runID,
		Input:       req.Input,
		Output:      output,
		Sheet:       src.sheet.Name,
		InputSHA256: src.digest,
		Levels:      c.Schema.Identifiers(),
		InputRows:   len(src.records),
		Rows:        len(rows),
		Renamed:     c.Renamed,
		DryRun:      req.DryRun,
		StartedAt:   start,
		Export:      rows,
	}

	if req.DryRun {
		result.Duration = clock.Since(e.clock, start)
		logger.Info("dry run complete", "rows", len(rows), "renamed", c.Renamed)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = table.Write(&buf, exportSheet(rows), table.WriteOptions{
		Kind:      outKind,
		SheetName: e.cfg.OutputSheet,
		Highlight: e.cfg.Highlight,
		Comma:     e.cfg.CommaRune(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	if err := e.fs.AtomicWrite(output, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	result.Duration = clock.Since(e.clock, start)
	logger.Info("wrote cascade", "output", output, "rows", len(rows), "renamed", c.Renamed)
	return result, nil
}

// nameCol is the output column holding the export name.
const nameCol = 1

// exportSheet lays rows out under the standard header, marking renamed names.
func exportSheet(rows []cascade.Row) *table.Sheet {
	sheet := &table.Sheet{
		Headers: append([]string(nil), cascade.Header...),
		Rows:    make([][]string, len(rows)),
	}
	for i, r := range rows {
		sheet.Rows[i] = r.Strings()
		if r.Renamed {
			sheet.Highlights = append(sheet.Highlights, table.CellRef{Row: i, Col: nameCol})
		}
	}
	return sheet
}
