package engine

import (
	"time"

	"github.com/danieljhkim/cascade/internal/cascade"
)

// BuildResult reports a completed build.
type BuildResult struct {
	// RunID identifies this run in logs.
	RunID string `json:"run_id"`

	// Input and Output are the source and destination paths.
	Input  string `json:"input"`
	Output string `json:"output"`

	// Sheet is the worksheet read, empty for delimited input.
	Sheet string `json:"sheet,omitempty"`

	// InputSHA256 fingerprints the input bytes.
	InputSHA256 string `json:"input_sha256"`

	// Levels are the hierarchy identifiers in order.
	Levels []string `json:"levels"`

	// InputRows counts data rows read; Rows counts rows written.
	InputRows int `json:"input_rows"`
	Rows      int `json:"rows"`

	// Renamed counts names synthesized by deduplication.
	Renamed int `json:"renamed"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`

	// Export holds the exported rows, in output order.
	Export []cascade.Row `json:"-"`
}

// InspectResult holds a built cascade for display.
type InspectResult struct {
	Input string `json:"input" yaml:"input"`
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`

	// Sheets lists every worksheet of an XLSX input.
	Sheets []string `json:"sheets,omitempty" yaml:"sheets,omitempty"`

	Schema *cascade.Schema `json:"schema" yaml:"schema"`

	// Tree is the deduplicated hierarchy, excluding the sentinel root.
	Tree []NodeView `json:"tree" yaml:"tree"`

	Nodes   int `json:"nodes" yaml:"nodes"`
	Renamed int `json:"renamed" yaml:"renamed"`

	cascade *cascade.Cascade
}

// Cascade returns the underlying build.
func (r *InspectResult) Cascade() *cascade.Cascade {
	return r.cascade
}

// NodeView is a serializable snapshot of a tree node.
type NodeView struct {
	Level    string        `json:"level" yaml:"level"`
	Name     cascade.Value `json:"name" yaml:"name"`
	Label    cascade.Value `json:"label" yaml:"label"`
	Rename   cascade.Value `json:"rename,omitempty" yaml:"rename,omitempty"`
	Children []NodeView    `json:"children,omitempty" yaml:"children,omitempty"`
}

func newNodeViews(nodes []*cascade.Node) []NodeView {
	if len(nodes) == 0 {
		return nil
	}
	views := make([]NodeView, len(nodes))
	for i, n := range nodes {
		views[i] = NodeView{
			Level:    n.Level,
			Name:     n.Name,
			Label:    n.Label,
			Rename:   n.Rename(),
			Children: newNodeViews(n.Children()),
		}
	}
	return views
}
