package cascade

// Tree is the accumulated hierarchy. The sentinel root is never exported.
type Tree struct {
	root *Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: newSentinel()}
}

// Root returns the sentinel root.
func (t *Tree) Root() *Node {
	return t.root
}

// Merge folds chain into the tree.
//
// Starting at the root, each chain node is matched against the current
// node's children by (name, label, level). Matching moves one level down.
// At the first mismatch the chain node is attached as a new child, taking
// the rest of the chain with it, and merging stops. Merge returns the
// attached node, or nil when the whole chain already existed.
//
// The chain must not be used after Merge.
func (t *Tree) Merge(chain Chain) *Node {
	ref := t.root
	for _, n := range chain.Nodes() {
		if existing := ref.child(n.key()); existing != nil {
			ref = existing
			continue
		}
		ref.add(n)
		return n
	}
	return nil
}

// Len returns the number of nodes, excluding the sentinel.
func (t *Tree) Len() int {
	count := -1
	for range t.Walk() {
		count++
	}
	return count
}
