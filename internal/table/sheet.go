package table

// Sheet is a header row plus data rows aligned to it.
type Sheet struct {
	// Name is the worksheet name; empty for delimited text.
	Name string

	Headers []string
	Rows    [][]string

	// Highlights lists data cells to fill with the highlight color when
	// writing XLSX. Row indexes Rows, not the header.
	Highlights []CellRef
}

// CellRef addresses a data cell by zero-based row and column.
type CellRef struct {
	Row int
	Col int
}

// normalize pads short rows to the header width and drops blank rows.
func normalize(headers []string, rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		}
		out = append(out, row)
	}
	return out
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
