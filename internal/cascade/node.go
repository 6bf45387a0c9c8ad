package cascade

import "fmt"

// Node is one entry of the hierarchy.
type Node struct {
	// Level is the identifier of the node's tier; empty for the sentinel.
	Level string

	// Name and Label are the cell values the node was built from.
	Name  Value
	Label Value

	rename   Value
	sentinel bool
	children []*Node

	// parent is used for name lookup during export; children own the tree.
	parent *Node
}

func newSentinel() *Node {
	return &Node{sentinel: true}
}

// key is the merge identity of a node.
type key struct {
	name  Value
	label Value
	level string
}

func (n *Node) key() key {
	return key{name: n.Name, label: n.Label, level: n.Level}
}

// IsSentinel reports whether n is a tree or chain root.
func (n *Node) IsSentinel() bool {
	return n.sentinel
}

// Children returns the node's children in insertion order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for a sentinel.
func (n *Node) Parent() *Node {
	return n.parent
}

// Rename returns the disambiguated name assigned by Dedup, if any.
func (n *Node) Rename() Value {
	return n.rename
}

// Renamed reports whether Dedup assigned a new name to n.
func (n *Node) Renamed() bool {
	return n.rename.Valid()
}

// ExportName is the rename if set, otherwise the raw name.
// The sentinel's export name is absent.
func (n *Node) ExportName() Value {
	if n.sentinel {
		return Value{}
	}
	if n.rename.Valid() {
		return n.rename
	}
	return n.Name
}

// String implements fmt.Stringer for debugging.
func (n *Node) String() string {
	return fmt.Sprintf("Id: %s, name: %s, label: %s", n.Level, n.ExportName(), n.Label)
}

func (n *Node) add(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// child returns the direct child whose merge key matches k, or nil.
func (n *Node) child(k key) *Node {
	for _, c := range n.children {
		if c.key() == k {
			return c
		}
	}
	return nil
}
