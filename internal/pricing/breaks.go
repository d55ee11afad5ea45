package pricing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownTable = errors.New("unknown price break table")

type PriceBreakRow struct {
	ID     int     `json:"id"`
	MinQty float64 `json:"minQty"`
	Deduct float64 `json:"deduct"`
}

type PriceBreakTable []PriceBreakRow

func (t PriceBreakTable) Clone() PriceBreakTable {
	return slices.Clone(t)
}

// Sorted returns a copy ordered by MinQty. Rows with equal thresholds keep
// their relative order.
func (t PriceBreakTable) Sorted() PriceBreakTable {
	sorted := t.Clone()
	slices.SortStableFunc(sorted, func(a, b PriceBreakRow) int {
		switch {
		case a.MinQty < b.MinQty:
			return -1
		case a.MinQty > b.MinQty:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func (t PriceBreakTable) IsSorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i].MinQty < t[i-1].MinQty {
			return false
		}
	}
	return true
}

func (t PriceBreakTable) Row(id int) (PriceBreakRow, bool) {
	for _, r := range t {
		if r.ID == id {
			return r, true
		}
	}
	return PriceBreakRow{}, false
}

// ResolveBreak picks the tier that applies to measured: among rows whose
// MinQty is at or below measured, the one with the highest threshold that
// carries a positive deduction. Higher tiers with a zero deduction fall
// through to the next eligible tier below them.
func ResolveBreak(table PriceBreakTable, measured float64) (PriceBreakRow, bool) {
	eligible := make(PriceBreakTable, 0, len(table))
	for _, r := range table {
		if r.MinQty <= measured {
			eligible = append(eligible, r)
		}
	}
	eligible = eligible.Sorted()

	for i := len(eligible) - 1; i >= 0; i-- {
		if ClampFloat(eligible[i].Deduct, 0, 0) > 0 {
			return eligible[i], true
		}
	}
	return PriceBreakRow{}, false
}

type TableKind string

const (
	QuantityBreaks   TableKind = "quantity"
	FrontColorBreaks TableKind = "front-color"
	BackColorBreaks  TableKind = "back-color"
)

var TableKinds = []TableKind{QuantityBreaks, FrontColorBreaks, BackColorBreaks}

func ParseTableKind(s string) (TableKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quantity", "qty":
		return QuantityBreaks, nil
	case "front-color", "front":
		return FrontColorBreaks, nil
	case "back-color", "back":
		return BackColorBreaks, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTable, s)
}

func (k TableKind) Title() string {
	switch k {
	case FrontColorBreaks:
		return "Front color price breaks"
	case BackColorBreaks:
		return "Back color price breaks"
	default:
		return "Quantity price breaks"
	}
}

// ThresholdLabel names what MinQty counts for this table.
func (k TableKind) ThresholdLabel() string {
	if k == QuantityBreaks {
		return "Min Qty"
	}
	return "Min Colors"
}

const defaultTierCount = 10

// DefaultTable returns the compiled-in tiers for kind: ten rows with ids
// 1..10 and zero deductions. Quantity thresholds step by a dozen, color
// thresholds by one.
func DefaultTable(kind TableKind) PriceBreakTable {
	step := 1.0
	if kind == QuantityBreaks {
		step = 12
	}
	table := make(PriceBreakTable, defaultTierCount)
	for i := range table {
		table[i] = PriceBreakRow{ID: i + 1, MinQty: float64(i+1) * step}
	}
	return table
}

type BreakTables struct {
	Quantity   PriceBreakTable
	FrontColor PriceBreakTable
	BackColor  PriceBreakTable
}

func DefaultBreakTables() BreakTables {
	return BreakTables{
		Quantity:   DefaultTable(QuantityBreaks),
		FrontColor: DefaultTable(FrontColorBreaks),
		BackColor:  DefaultTable(BackColorBreaks),
	}
}

func (b BreakTables) Table(kind TableKind) PriceBreakTable {
	switch kind {
	case FrontColorBreaks:
		return b.FrontColor
	case BackColorBreaks:
		return b.BackColor
	default:
		return b.Quantity
	}
}

func (b BreakTables) WithTable(kind TableKind, table PriceBreakTable) BreakTables {
	switch kind {
	case FrontColorBreaks:
		b.FrontColor = table
	case BackColorBreaks:
		b.BackColor = table
	default:
		b.Quantity = table
	}
	return b
}
