package proptest

import (
	"testing"

	"threadco/internal/catalog"
	"threadco/internal/pricing"

	"pgregory.net/rapid"
)

func TestProperty_Surcharge_MonotoneFromZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-20, 50).Draw(rt, "colors")
		s := pricing.Surcharge(n)

		if n <= 0 && s != 0 {
			rt.Fatalf("Surcharge(%d) = %v, want 0", n, s)
		}
		if n > 0 && pricing.Surcharge(n+1)-s != 1.5 {
			rt.Fatalf("Surcharge step at %d is %v, want 1.5", n, pricing.Surcharge(n+1)-s)
		}
	})
}

func TestProperty_ResolveBreak_HighestEligibleWithDeduction(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		table := tableGen(minTiers, maxTiers).Draw(rt, "table")
		measured := float64(rapid.IntRange(0, 250).Draw(rt, "measured"))

		got, ok := pricing.ResolveBreak(table, measured)

		var best *pricing.PriceBreakRow
		for i := range table {
			r := table[i]
			if r.MinQty > measured || r.Deduct <= 0 {
				continue
			}
			if best == nil || r.MinQty >= best.MinQty {
				best = &table[i]
			}
		}

		if best == nil {
			if ok {
				rt.Fatalf("expected no break, got %+v", got)
			}
			return
		}
		if !ok {
			rt.Fatalf("expected a break at threshold %v, got none", best.MinQty)
		}
		if got.MinQty != best.MinQty || got.Deduct <= 0 || got.MinQty > measured {
			rt.Fatalf("resolved %+v, want threshold %v", got, best.MinQty)
		}
	})
}

func TestProperty_ResolveBreak_IgnoresInputOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		table := tableGen(minTiers, maxTiers).Draw(rt, "table")
		measured := float64(rapid.IntRange(0, 250).Draw(rt, "measured"))

		a, okA := pricing.ResolveBreak(table, measured)
		b, okB := pricing.ResolveBreak(table.Sorted(), measured)

		if okA != okB || a != b {
			rt.Fatalf("unsorted resolved %+v/%v, sorted resolved %+v/%v", a, okA, b, okB)
		}
	})
}

func TestProperty_PriceManual_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := manualInputGen().Draw(rt, "input")
		tables := breakTablesGen().Draw(rt, "tables")

		verifyManualQuote(rt, pricing.PriceManual(in, tables))
	})
}

func TestProperty_PriceManual_DefaultTablesMatchCatalogMath(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := float64(rapid.IntRange(0, 10000).Draw(rt, "cents")) / 100
		qty := rapid.IntRange(1, 1000).Draw(rt, "qty")
		front := rapid.IntRange(0, 10).Draw(rt, "front")
		back := rapid.IntRange(0, 10).Draw(rt, "back")

		manual := pricing.PriceManual(pricing.ManualInput{
			BasePrice: base, Quantity: qty, FrontColors: front, BackColors: back,
		}, pricing.DefaultBreakTables())
		row := catalog.Row{BasePrice: base}
		cat := pricing.PriceCatalog(&row, front, back, qty)

		if manual.UnitPrice != cat.UnitPrice || manual.TotalPrice != cat.TotalPrice {
			rt.Fatalf("manual %v/%v differs from catalog %v/%v",
				manual.UnitPrice, manual.TotalPrice, cat.UnitPrice, cat.TotalPrice)
		}
	})
}

func TestProperty_PriceSelection_NeverNegative(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		idx, _ := h.GenIndex(minRows, maxRows)
		query := queryGen.Draw(h.T, "query")
		groups := idx.Search(query)
		if len(groups) == 0 {
			h.T.Skip("no matches")
		}
		g := rapid.SampledFrom(groups).Draw(h.T, "group")

		sel := catalog.NewSelection().
			WithProduct(idx, g).
			WithQuantity(rapid.IntRange(-5, 500).Draw(h.T, "qty")).
			WithColorCounts(countGen.Draw(h.T, "front"), countGen.Draw(h.T, "back"))

		verifyCatalogQuote(h.T, pricing.PriceSelection(idx, sel))
	})
}
