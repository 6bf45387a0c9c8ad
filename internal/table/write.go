package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultHighlight is the fill used for highlighted cells.
const DefaultHighlight = "#FDFD96"

// WriteOptions controls Write.
type WriteOptions struct {
	Kind Kind

	// SheetName names the XLSX worksheet; empty keeps the excelize default.
	SheetName string

	// Highlight is the fill color for Sheet.Highlights, e.g. "#FDFD96".
	Highlight string

	// Comma is the CSV field delimiter; zero means ','.
	Comma rune
}

// Write encodes sheet to w. Compression in opts.Kind is ignored: output is
// always written uncompressed.
func Write(w io.Writer, sheet *Sheet, opts WriteOptions) error {
	switch opts.Kind.Format {
	case FormatXLSX:
		return writeXLSX(w, sheet, opts)
	case FormatCSV, FormatTSV:
		return writeDelimited(w, sheet, delimiter(opts.Kind.Format, opts.Comma))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.Kind.Format)
	}
}

func writeXLSX(w io.Writer, sheet *Sheet, opts WriteOptions) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	name := f.GetSheetList()[0]
	if opts.SheetName != "" && opts.SheetName != name {
		if err := f.SetSheetName(name, opts.SheetName); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
		name = opts.SheetName
	}

	if err := setRow(f, name, 1, sheet.Headers); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	if len(sheet.Highlights) > 0 {
		color := opts.Highlight
		if color == "" {
			color = DefaultHighlight
		}
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return fmt.Errorf("failed to create highlight style: %w", err)
		}
		for _, ref := range sheet.Highlights {
			cell, err := excelize.CoordinatesToCellName(ref.Col+1, ref.Row+2)
			if err != nil {
				return fmt.Errorf("invalid highlight cell: %w", err)
			}
			if err := f.SetCellStyle(name, cell, cell, style); err != nil {
				return fmt.Errorf("failed to highlight %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func writeDelimited(w io.Writer, sheet *Sheet, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(sheet.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(sheet.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
