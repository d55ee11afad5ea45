package main

import (
	"fmt"

	"threadco/cmd/threadco/render"
	"threadco/internal/catalog"
	"threadco/internal/pricing"

	"go.uber.org/zap"
)

type QuoteCmd struct {
	Product string `arg:"" help:"Product style or name"`
	Method  string `help:"Decoration method"`
	Color   string `help:"Garment color"`
	Qty     int    `short:"q" default:"1" help:"Number of units"`
	Front   int    `default:"1" help:"Front print colors"`
	Back    int    `default:"0" help:"Back print colors"`
}

func (cmd *QuoteCmd) selection(g *Globals, cat catalog.Catalog, group catalog.ProductGroup) catalog.Selection {
	sel := catalog.NewSelection().WithProduct(cat, group)
	if cmd.Method != "" {
		sel = sel.WithMethod(cat, cmd.Method)
		if sel.Method != cmd.Method {
			g.Log.Warn("method not offered for product", zap.String("method", cmd.Method), zap.String("using", sel.Method))
		}
	}
	if cmd.Color != "" {
		sel = sel.WithColor(cat, cmd.Color)
		if sel.Color != cmd.Color {
			g.Log.Warn("color not offered for method", zap.String("color", cmd.Color), zap.String("using", sel.Color))
		}
	}
	return sel.WithQuantity(cmd.Qty).WithColorCounts(cmd.Front, cmd.Back)
}

func (cmd *QuoteCmd) Run(g *Globals) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}
	group, err := findProduct(cat, cmd.Product)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	sel := cmd.selection(g, cat, group)
	quote := pricing.PriceSelection(cat, sel)
	fmt.Fprint(g.Out, g.Render.RenderCatalogQuote(render.CatalogQuoteView{Selection: sel, Quote: quote}))
	return nil
}
