package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Source field names. Catalog files use these keys verbatim.
const (
	FieldStyle            = "Style"
	FieldName             = "Name"
	FieldDecorationMethod = "DecorationMethod"
	FieldColor            = "Color"
	FieldHexColor         = "HexColor"
	FieldBasePrice        = "BasePrice"
)

var Fields = []string{FieldStyle, FieldName, FieldDecorationMethod, FieldColor, FieldHexColor, FieldBasePrice}

// Row is one priced variant: a style in a decoration method and color.
type Row struct {
	Style            string  `json:"Style" yaml:"Style"`
	Name             string  `json:"Name" yaml:"Name"`
	DecorationMethod string  `json:"DecorationMethod" yaml:"DecorationMethod"`
	Color            string  `json:"Color,omitempty" yaml:"Color,omitempty"`
	HexColor         string  `json:"HexColor,omitempty" yaml:"HexColor,omitempty"`
	BasePrice        float64 `json:"BasePrice" yaml:"BasePrice"`
}

func (r Row) Valid() bool {
	if r.Style == "" || r.Name == "" || r.DecorationMethod == "" {
		return false
	}
	return !math.IsNaN(r.BasePrice) && !math.IsInf(r.BasePrice, 0) && r.BasePrice >= 0
}

func ValidRows(rows []Row) []Row {
	valid := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// FromRecord converts a decoded source record into a Row. It reports false
// when a required field is missing or BasePrice is not a number.
func FromRecord(rec map[string]any) (Row, bool) {
	price, ok := numberField(rec[FieldBasePrice])
	if !ok {
		return Row{}, false
	}
	r := Row{
		Style:            textField(rec[FieldStyle]),
		Name:             textField(rec[FieldName]),
		DecorationMethod: textField(rec[FieldDecorationMethod]),
		Color:            textField(rec[FieldColor]),
		HexColor:         textField(rec[FieldHexColor]),
		BasePrice:        price,
	}
	return r, r.Valid()
}

// YAML decodes unquoted styles like 5000 as integers, so numbers are
// accepted for text fields and rendered back in their shortest form.
func textField(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	}
	return ""
}

func numberField(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
