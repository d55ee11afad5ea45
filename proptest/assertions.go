package proptest

import (
	"threadco/internal/catalog"
	"threadco/internal/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

func assertTablesEqual(t *rapid.T, expected, actual pricing.PriceBreakTable) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func assertGroupsEqual(t *rapid.T, expected, actual []catalog.ProductGroup) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty(), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}
}

func assertGroupsSorted(t *rapid.T, groups []catalog.ProductGroup) {
	t.Helper()
	col := collate.New(language.English)
	for i := 0; i < len(groups)-1; i++ {
		a, b := groups[i], groups[i+1]
		c := col.CompareString(a.Style, b.Style)
		if c > 0 || (c == 0 && col.CompareString(a.Name, b.Name) > 0) {
			t.Fatalf("sort order violated at positions %d, %d: %q/%q before %q/%q",
				i, i+1, a.Style, a.Name, b.Style, b.Name)
		}
	}
}

func assertGroupsBackedByRows(t *rapid.T, groups []catalog.ProductGroup, rows []catalog.Row) {
	t.Helper()
	for _, g := range groups {
		found := false
		for _, r := range rows {
			if r.Valid() && r.Style == g.Style && r.Name == g.Name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("group %q/%q has no valid row", g.Style, g.Name)
		}
	}
}
