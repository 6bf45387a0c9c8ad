package cascade

import (
	"fmt"

	"github.com/danieljhkim/cascade/internal/logging"
)

// Cascade is the result of one build: the parsed schema and the finished,
// deduplicated tree.
type Cascade struct {
	Schema *Schema
	Tree   *Tree

	// Renamed counts nodes that received a synthesized name.
	Renamed int
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger logging.Logger
}

// WithLogger sets the logger used for debug tracing of the build.
func WithLogger(l logging.Logger) Option {
	return func(o *buildOptions) {
		o.logger = l
	}
}

// Build parses headers, merges every record into a new tree and deduplicates
// it. Schema errors abort before any record is processed.
func Build(headers []string, records []Record, opts ...Option) (*Cascade, error) {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNop(o.logger)

	schema, err := ParseSchema(headers)
	if err != nil {
		return nil, fmt.Errorf("failed to parse headers: %w", err)
	}
	logger.Debug("parsed schema",
		"levels", schema.Identifiers(),
		"has_name", schema.HasName,
		"has_label", schema.HasLabel)

	tree := NewTree()
	for i, rec := range records {
		attached := tree.Merge(schema.Chain(rec))
		if attached != nil {
			logger.Debug("attached branch", "row", i+1, "level", attached.Level, "name", attached.Name.String())
		}
	}

	renamed := tree.Dedup()
	logger.Debug("deduplicated levels", "renamed", renamed)

	return &Cascade{Schema: schema, Tree: tree, Renamed: renamed}, nil
}

// Rows exports the tree.
func (c *Cascade) Rows() []Row {
	return c.Tree.Export()
}
