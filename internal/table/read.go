package table

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadOptions controls Read.
type ReadOptions struct {
	Kind Kind

	// Sheet selects an XLSX worksheet by name; empty selects the first.
	Sheet string

	// Comma is the CSV field delimiter; zero means ','. TSV always uses tab.
	Comma rune
}

// Read parses r into a Sheet. The first row is the header; data rows are
// padded to the header width and blank rows are dropped.
func Read(r io.Reader, opts ReadOptions) (*Sheet, error) {
	switch opts.Kind.Format {
	case FormatXLSX:
		return readXLSX(r, opts.Sheet)
	case FormatCSV, FormatTSV:
		dr, closeFn, err := decompress(r, opts.Kind.Compression)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s reader: %w", opts.Kind.Compression, err)
		}
		defer closeFn()
		return readDelimited(dr, delimiter(opts.Kind.Format, opts.Comma))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.Kind.Format)
	}
}

// SheetNames lists the worksheets of an XLSX workbook.
func SheetNames(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return f.GetSheetList(), nil
}

func readXLSX(r io.Reader, sheet string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, ErrNoSheets
	}
	if sheet == "" {
		sheet = names[0]
	} else if !slices.Contains(names, sheet) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w in sheet %s", ErrEmpty, sheet)
	}

	return &Sheet{
		Name:    sheet,
		Headers: rows[0],
		Rows:    normalize(rows[0], rows[1:]),
	}, nil
}

// readDelimited drops a leading UTF-8 byte order mark, as written by
// Excel's "CSV UTF-8" export.
func readDelimited(r io.Reader, comma rune) (*Sheet, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited data: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	return &Sheet{
		Headers: records[0],
		Rows:    normalize(records[0], records[1:]),
	}, nil
}

func delimiter(f Format, comma rune) rune {
	if f == FormatTSV {
		return '\t'
	}
	if comma == 0 {
		return ','
	}
	return comma
}

// decompress wraps r according to c. The returned close function is never nil.
func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	noop := func() {}
	switch c {
	case CompressionNone:
		return r, noop, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case CompressionBzip2:
		return bzip2.NewReader(r), noop, nil
	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return xr, noop, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return dec, dec.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: compression %s", ErrUnsupportedFormat, c)
	}
}
