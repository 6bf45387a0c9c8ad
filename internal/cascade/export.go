package cascade

// Header is the output header row.
var Header = []string{"list_name", "name", "label", "filter_list"}

// Row is one exported choice.
type Row struct {
	// ListName is "<level>_list".
	ListName string `json:"list_name" yaml:"list_name"`

	// Name is the node's export name.
	Name Value `json:"name" yaml:"name"`

	// Label is the node's raw label.
	Label Value `json:"label" yaml:"label"`

	// Filter is the parent's export name; absent for top-level nodes.
	Filter Value `json:"filter_list" yaml:"filter_list"`

	// Renamed is true when Name was synthesized by Dedup.
	Renamed bool `json:"renamed" yaml:"renamed"`
}

// Strings returns the row as output cells in Header order.
func (r Row) Strings() []string {
	return []string{r.ListName, r.Name.String(), r.Label.String(), r.Filter.String()}
}

// Export returns one Row per node in breadth-first order, skipping the sentinel.
func (t *Tree) Export() []Row {
	var rows []Row
	for n := range t.Walk() {
		if n.sentinel {
			continue
		}
		rows = append(rows, Row{
			ListName: ListName(n.Level),
			Name:     n.ExportName(),
			Label:    n.Label,
			Filter:   n.parent.ExportName(),
			Renamed:  n.Renamed(),
		})
	}
	return rows
}
