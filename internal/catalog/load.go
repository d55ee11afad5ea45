package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var requiredColumns = []string{FieldStyle, FieldName, FieldDecorationMethod, FieldBasePrice}

// Load reads a catalog file and indexes its valid rows. The format comes
// from the extension.
func Load(path string) (*Index, error) {
	if path == "" {
		return nil, ErrNoSource
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unsupported catalog format %q", path)
	}

	if format == FormatXLSX {
		records, err := readXLSX(path)
		if err != nil {
			return nil, err
		}
		return indexRecords(records), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	idx, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}
	return idx, nil
}

// Parse decodes JSON, YAML or CSV catalog data.
func Parse(format Format, data []byte) (*Index, error) {
	var (
		records []map[string]any
		err     error
	)

	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatCSV:
		records, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return indexRecords(records), nil
}

func indexRecords(records []map[string]any) *Index {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		if r, ok := FromRecord(rec); ok {
			rows = append(rows, r)
		}
	}
	return NewIndex(rows)
}

func decodeJSON(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return recordsOf(doc)
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return recordsOf(doc)
}

// recordsOf accepts a top-level sequence. Elements that are not mappings
// are skipped like any other invalid row.
func recordsOf(doc any) ([]map[string]any, error) {
	list, ok := doc.([]any)
	if !ok {
		return nil, ErrInvalidSource
	}

	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func decodeCSV(data []byte) ([]map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog CSV: %w", err)
	}
	return recordsFromTable(table)
}

func readXLSX(path string) ([]map[string]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrInvalidSource
	}

	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	records, err := recordsFromTable(table)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog workbook %q: %w", path, err)
	}
	return records, nil
}

// recordsFromTable maps a header row plus data rows to records. Header
// names match source field names case-insensitively. BasePrice cells that
// do not parse stay as text and the row is dropped later.
func recordsFromTable(table [][]string) ([]map[string]any, error) {
	if len(table) == 0 {
		return nil, ErrInvalidSource
	}

	columns := make(map[int]string)
	present := make(map[string]bool)
	for i, h := range table[0] {
		for _, f := range Fields {
			if strings.EqualFold(strings.TrimSpace(h), f) {
				columns[i] = f
				present[f] = true
			}
		}
	}

	var missing []string
	for _, f := range requiredColumns {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %v", ErrInvalidSource, missing)
	}

	records := make([]map[string]any, 0, len(table)-1)
	for _, cells := range table[1:] {
		rec := make(map[string]any, len(columns))
		for i, field := range columns {
			if i >= len(cells) {
				continue
			}
			rec[field] = cells[i]
		}
		if s, ok := rec[FieldBasePrice].(string); ok {
			if price, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				rec[FieldBasePrice] = price
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
