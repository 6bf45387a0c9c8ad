package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"geo.xlsx", Kind{FormatXLSX, CompressionNone, ".xlsx"}},
		{"GEO.XLSM", Kind{FormatXLSX, CompressionNone, ".xlsm"}},
		{"dir/geo.csv", Kind{FormatCSV, CompressionNone, ".csv"}},
		{"geo.tsv", Kind{FormatTSV, CompressionNone, ".tsv"}},
		{"geo.csv.gz", Kind{FormatCSV, CompressionGzip, ".csv"}},
		{"geo.csv.bz2", Kind{FormatCSV, CompressionBzip2, ".csv"}},
		{"geo.tsv.xz", Kind{FormatTSV, CompressionXZ, ".tsv"}},
		{"geo.csv.zst", Kind{FormatCSV, CompressionZstd, ".csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Detect(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Unsupported(t *testing.T) {
	for _, path := range []string{"geo.txt", "geo", "geo.gz", "geo.xlsx.gz", "geo.xls"} {
		_, err := Detect(path)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "path %s: %v", path, err)
	}
}

func TestFormatAndCompressionStrings(t *testing.T) {
	assert.Equal(t, "xlsx", FormatXLSX.String())
	assert.Equal(t, "tsv", FormatTSV.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "Format(9)", Format(9).String())
}
