package engine

// BuildRequest represents a request to convert a spreadsheet into a cascade.
type BuildRequest struct {
	// Input is the path of the source spreadsheet.
	Input string

	// Output is the destination path. Empty derives "<base>-cascade<ext>"
	// next to Input.
	Output string

	// Sheet selects the input worksheet; empty uses the configured sheet,
	// then the first one.
	Sheet string

	// DryRun builds the cascade without writing the output file.
	DryRun bool
}

// InspectRequest represents a request to parse and build a cascade without
// writing anything.
type InspectRequest struct {
	// Input is the path of the source spreadsheet.
	Input string

	// Sheet selects the input worksheet.
	Sheet string
}
