package cascade

import "strings"

// Column naming conventions.
const (
	// Separator splits an identifier from its column suffix.
	Separator = "|"

	// NameSuffix marks the column holding a level's machine name.
	NameSuffix = "name"

	// LabelSuffix marks the column holding a level's display label.
	LabelSuffix = "label"

	// ListSuffix is appended to an identifier to form its choice list name.
	ListSuffix = "_list"
)

// ColumnName returns the header for identifier id and the given suffix,
// e.g. ColumnName("region", NameSuffix) == "region|name".
func ColumnName(id, suffix string) string {
	return id + Separator + suffix
}

// ListName returns the choice list name for identifier id.
func ListName(id string) string {
	return id + ListSuffix
}

// Level is one tier of the hierarchy.
type Level struct {
	// ID is the identifier shared by the level's columns.
	ID string `json:"id" yaml:"id"`

	// HasName is true if a "<id>|name" column exists.
	HasName bool `json:"has_name" yaml:"has_name"`

	// HasLabel is true if a "<id>|label" column exists.
	HasLabel bool `json:"has_label" yaml:"has_label"`

	// NameColumn and LabelColumn index the first matching header, or -1.
	NameColumn  int `json:"name_column" yaml:"name_column"`
	LabelColumn int `json:"label_column" yaml:"label_column"`
}

// Coverage describes which columns the level has.
func (l Level) Coverage() string {
	switch {
	case l.HasName && l.HasLabel:
		return "name+label"
	case l.HasName:
		return "name"
	case l.HasLabel:
		return "label"
	default:
		return "none"
	}
}

type coverage struct {
	name, label bool
}

// Schema is the ordered set of levels derived from a header row.
// It is immutable once parsed.
type Schema struct {
	// Headers is the header row the schema was parsed from.
	Headers []string `json:"headers" yaml:"headers"`

	// Levels in first-appearance order.
	Levels []Level `json:"levels" yaml:"levels"`

	// HasName and HasLabel are shared by every level.
	HasName  bool `json:"has_name" yaml:"has_name"`
	HasLabel bool `json:"has_label" yaml:"has_label"`
}

// ParseSchema scans headers for "<identifier>|<suffix>" columns.
//
// Any header containing the separator registers its identifier; only the
// suffixes "name" and "label" set coverage, so columns such as
// "region|label::French" register "region" without adding coverage. Headers
// without a separator are ignored. Every identifier must end up with the
// same name/label coverage, otherwise a *SchemaError is returned.
func ParseSchema(headers []string) (*Schema, error) {
	index := make(map[string]int)
	var levels []Level

	for col, header := range headers {
		id, suffix, found := strings.Cut(header, Separator)
		if !found {
			continue
		}

		i, seen := index[id]
		if !seen {
			i = len(levels)
			index[id] = i
			levels = append(levels, Level{ID: id, NameColumn: -1, LabelColumn: -1})
		}

		lvl := &levels[i]
		switch suffix {
		case NameSuffix:
			if !lvl.HasName {
				lvl.HasName = true
				lvl.NameColumn = col
			}
		case LabelSuffix:
			if !lvl.HasLabel {
				lvl.HasLabel = true
				lvl.LabelColumn = col
			}
		}
	}

	if len(levels) == 0 {
		return nil, &SchemaError{Reason: "no identifier columns found"}
	}

	kinds := make(map[coverage]struct{})
	for _, lvl := range levels {
		kinds[coverage{lvl.HasName, lvl.HasLabel}] = struct{}{}
	}
	if len(kinds) != 1 {
		return nil, &SchemaError{
			Reason: "inconsistent name/label coverage across levels",
			Levels: levels,
		}
	}

	return &Schema{
		Headers:  append([]string(nil), headers...),
		Levels:   levels,
		HasName:  levels[0].HasName,
		HasLabel: levels[0].HasLabel,
	}, nil
}

// Depth returns the number of levels.
func (s *Schema) Depth() int {
	return len(s.Levels)
}

// Identifiers returns the level identifiers in order.
func (s *Schema) Identifiers() []string {
	ids := make([]string, len(s.Levels))
	for i, lvl := range s.Levels {
		ids[i] = lvl.ID
	}
	return ids
}
