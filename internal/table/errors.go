package table

import "errors"

var (
	// ErrUnsupportedFormat indicates a path whose extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoSheets indicates a workbook without worksheets.
	ErrNoSheets = errors.New("no sheets found")

	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrEmpty indicates input without a header row.
	ErrEmpty = errors.New("no header row")
)
