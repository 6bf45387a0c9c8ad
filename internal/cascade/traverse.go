package cascade

import "iter"

// Walk yields every node breadth-first, starting with the sentinel root.
// Each call starts a fresh traversal.
func (t *Tree) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{t.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			queue = append(queue, n.children...)
			if !yield(n) {
				return
			}
		}
	}
}

// Levels yields the nodes of each depth in breadth-first order. The first
// level holds only the sentinel root. Each level is computed lazily from
// the previous one.
func (t *Tree) Levels() iter.Seq[[]*Node] {
	return func(yield func([]*Node) bool) {
		current := []*Node{t.root}
		for len(current) > 0 {
			if !yield(current) {
				return
			}
			var next []*Node
			for _, n := range current {
				next = append(next, n.children...)
			}
			current = next
		}
	}
}

// Nodes returns Walk as a slice, excluding the sentinel.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	for n := range t.Walk() {
		if n.sentinel {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}
