package cascade

// Record is one data row, aligned by position with Schema.Headers.
type Record []Value

// NewRecord converts raw cells into a Record; empty cells become absent.
func NewRecord(cells []string) Record {
	rec := make(Record, len(cells))
	for i, c := range cells {
		rec[i] = Cell(c)
	}
	return rec
}

// Chain is the linear candidate path built from one row: a fresh sentinel
// followed by one linked Node per level.
type Chain struct {
	root *Node
}

// Nodes returns the level nodes in order, excluding the sentinel.
func (c Chain) Nodes() []*Node {
	var nodes []*Node
	for n := c.root; len(n.children) > 0; {
		n = n.children[0]
		nodes = append(nodes, n)
	}
	return nodes
}

// Chain builds the candidate path for rec. Cells are not validated: a level
// without a name (or label) column gets an absent name (or label).
//
// rec must be at least as wide as the header row; a shorter record is a
// caller error and panics on lookup.
func (s *Schema) Chain(rec Record) Chain {
	root := newSentinel()
	tail := root
	for _, lvl := range s.Levels {
		n := &Node{Level: lvl.ID}
		if lvl.HasName {
			n.Name = rec[lvl.NameColumn]
		}
		if lvl.HasLabel {
			n.Label = rec[lvl.LabelColumn]
		}
		tail.add(n)
		tail = n
	}
	return Chain{root: root}
}
