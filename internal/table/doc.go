// Package table reads and writes the spreadsheets cascade works on.
//
// XLSX workbooks are handled with excelize. Delimited text (CSV, TSV) is
// handled with encoding/csv and may be compressed with gzip, bzip2, xz or
// zstd; the compression is chosen from the file extension. A Sheet is the
// in-memory exchange format: a header row, data rows aligned to it, and
// an optional set of cells to highlight when writing XLSX.
package table
