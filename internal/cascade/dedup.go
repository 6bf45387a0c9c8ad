package cascade

import "strconv"

// Dedup makes export names unique within each depth of the tree.
//
// Uniqueness is level-wide, not per parent: the second "D1" on a level is
// renamed "D1_1" even if its parent differs from the first. Within a level
// nodes are visited breadth-first; a colliding node gets the smallest
// "<name>_<k>" (k >= 1) not yet taken on that level. Nodes without a name
// never collide. A rename, once assigned, is kept by later calls.
//
// Dedup returns the number of nodes renamed by this call.
func (t *Tree) Dedup() int {
	renamed := 0
	for level := range t.Levels() {
		if len(level) > 0 && level[0].sentinel {
			continue
		}

		// Earlier renames are claimed first so new names cannot take them.
		taken := make(map[string]struct{}, len(level))
		for _, n := range level {
			if n.rename.Valid() {
				taken[n.rename.s] = struct{}{}
			}
		}
		for _, n := range level {
			if n.rename.Valid() {
				continue
			}
			name, ok := n.Name.Get()
			if !ok {
				continue
			}
			if _, clash := taken[name]; !clash {
				taken[name] = struct{}{}
				continue
			}

			k := 1
			candidate := name + "_" + strconv.Itoa(k)
			for {
				if _, clash := taken[candidate]; !clash {
					break
				}
				k++
				candidate = name + "_" + strconv.Itoa(k)
			}
			n.rename = Some(candidate)
			taken[candidate] = struct{}{}
			renamed++
		}
	}
	return renamed
}
