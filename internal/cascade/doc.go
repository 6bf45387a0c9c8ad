// Package cascade turns a column-per-level spreadsheet encoding of a
// hierarchy into a deduplicated tree and linearizes it into choice-list rows
// for cascading selects.
//
// Columns are named "<identifier>|name" and "<identifier>|label". The order
// in which identifiers first appear in the headers fixes the level order.
// Each data row becomes a Chain (one Node per level) which is merged into a
// shared Tree: existing branches are reused while the (name, label, level)
// triple matches and the remainder of the chain is grafted at the first
// divergence. After all rows are merged, Dedup renames nodes whose names
// collide anywhere on the same depth, and Export walks the tree breadth-first
// to produce one Row per node.
//
// Key components:
//   - ParseSchema: header scan into ordered Levels
//   - Schema.Chain: one row into a linear Chain
//   - Tree.Merge: fold a Chain into the Tree
//   - Tree.Dedup: level-wide name disambiguation
//   - Tree.Walk / Tree.Levels: deterministic breadth-first views
//   - Tree.Export: flat output rows
//
// A Tree is not safe for concurrent use.
package cascade
