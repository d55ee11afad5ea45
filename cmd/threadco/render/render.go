package render

import (
	"threadco/internal/catalog"
	"threadco/internal/pricing"
)

type Renderer interface {
	RenderSearchResults(view SearchView) string
	RenderCatalogQuote(view CatalogQuoteView) string
	RenderManualQuote(view ManualQuoteView) string
	RenderBreakTable(view BreakTableView) string
}

type SearchView struct {
	Groups []catalog.ProductGroup
}

func (v SearchView) IsEmpty() bool {
	return len(v.Groups) == 0
}

type CatalogQuoteView struct {
	Selection catalog.Selection
	Quote     pricing.CatalogQuote
}

type ManualQuoteView struct {
	Quote pricing.ManualQuote
}

type BreakTableView struct {
	Kind  pricing.TableKind
	Table pricing.PriceBreakTable
}
