package proptest

import (
	"math"
	"slices"

	"threadco/internal/catalog"
	"threadco/internal/pricing"

	"pgregory.net/rapid"
)

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && v >= 0
}

func verifyCatalogQuote(t *rapid.T, q pricing.CatalogQuote) {
	t.Helper()
	if !nonNegative(q.UnitPrice) || !nonNegative(q.TotalPrice) {
		t.Fatalf("negative catalog quote: unit=%v total=%v", q.UnitPrice, q.TotalPrice)
	}
	if !q.Priced && (q.UnitPrice != 0 || q.TotalPrice != 0) {
		t.Fatalf("unpriced quote has unit=%v total=%v", q.UnitPrice, q.TotalPrice)
	}
}

func verifyManualQuote(t *rapid.T, q pricing.ManualQuote) {
	t.Helper()
	if !nonNegative(q.UnitPrice) || !nonNegative(q.TotalPrice) {
		t.Fatalf("negative manual quote: unit=%v total=%v", q.UnitPrice, q.TotalPrice)
	}
	if !nonNegative(q.EffectiveFront) || !nonNegative(q.EffectiveBack) {
		t.Fatalf("negative effective surcharge: front=%v back=%v", q.EffectiveFront, q.EffectiveBack)
	}
	in := q.Input
	if in.Quantity < 1 || in.FrontColors < 0 || in.BackColors < 0 || !nonNegative(in.BasePrice) {
		t.Fatalf("input not clamped: %+v", in)
	}
}

// verifySelection checks the membership rules after any selection change.
func verifySelection(t *rapid.T, cat catalog.Catalog, s catalog.Selection) {
	t.Helper()
	if !s.HasProduct() {
		return
	}
	methods := cat.MethodsFor(s.Style)
	if len(methods) == 0 {
		if s.Method != "" {
			t.Fatalf("method %q set for style %q with no methods", s.Method, s.Style)
		}
		return
	}
	if !slices.Contains(methods, s.Method) {
		t.Fatalf("method %q not in %v", s.Method, methods)
	}

	colors := cat.ColorsFor(s.Style, s.Method)
	if len(colors) == 0 {
		if s.Color != "" {
			t.Fatalf("color %q set with no colors available", s.Color)
		}
		return
	}
	if !slices.ContainsFunc(colors, func(c catalog.ColorOption) bool { return c.Color == s.Color }) {
		t.Fatalf("color %q not offered for %s/%s", s.Color, s.Style, s.Method)
	}
}
