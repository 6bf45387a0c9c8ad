package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a spreadsheet file format.
type Format int

const (
	FormatXLSX Format = iota
	FormatCSV
	FormatTSV
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Compression is the compression applied to a delimited text file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

var compressionExts = map[string]Compression{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
	".zst": CompressionZstd,
}

var formatExts = map[string]Format{
	".xlsx": FormatXLSX,
	".xlsm": FormatXLSX,
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
}

// Kind identifies how a file is encoded.
type Kind struct {
	Format      Format
	Compression Compression

	// Ext is the base extension without the compression suffix, e.g. ".csv".
	Ext string
}

// Detect derives the Kind of path from its extension, case-insensitively.
// Only CSV and TSV may carry a compression suffix.
func Detect(path string) (Kind, error) {
	lower := strings.ToLower(path)

	comp := CompressionNone
	if c, ok := compressionExts[filepath.Ext(lower)]; ok {
		comp = c
		lower = strings.TrimSuffix(lower, filepath.Ext(lower))
	}

	ext := filepath.Ext(lower)
	format, ok := formatExts[ext]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	if format == FormatXLSX && comp != CompressionNone {
		return Kind{}, fmt.Errorf("%w: compressed workbook %s", ErrUnsupportedFormat, filepath.Base(path))
	}

	return Kind{Format: format, Compression: comp, Ext: ext}, nil
}
