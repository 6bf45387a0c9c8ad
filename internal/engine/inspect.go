package engine

import (
	"context"

	"github.com/danieljhkim/cascade/internal/cascade"
)

// Inspect builds the cascade for req.Input and returns it without writing.
func (e *Engine) Inspect(ctx context.Context, req *InspectRequest) (*InspectResult, error) {
	src, err := e.load(ctx, req.Input, req.Sheet)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := e.logger.With("run", e.newRunID())
	c, err := cascade.Build(src.sheet.Headers, src.records, cascade.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &InspectResult{
		Input:   req.Input,
		Sheet:   src.sheet.Name,
		Sheets:  src.sheets,
		Schema:  c.Schema,
		Tree:    newNodeViews(c.Tree.Root().Children()),
		Nodes:   c.Tree.Len(),
		Renamed: c.Renamed,
		cascade: c,
	}, nil
}
