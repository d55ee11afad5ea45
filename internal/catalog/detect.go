package catalog

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatUnknown Format = ""
)

// DetectFormat picks a source format from the file extension.
func DetectFormat(path string) Format {
	markers := []struct {
		ext    string
		format Format
	}{
		{".json", FormatJSON},
		{".yaml", FormatYAML},
		{".yml", FormatYAML},
		{".csv", FormatCSV},
		{".xlsx", FormatXLSX},
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markers {
		if ext == m.ext {
			return m.format
		}
	}
	return FormatUnknown
}
