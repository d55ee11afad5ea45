package main

import (
	"context"
	"fmt"

	"threadco/cmd/threadco/render"
	"threadco/internal/pricing"

	"go.uber.org/zap"
)

type ManualCmd struct {
	Base  float64 `default:"0" help:"Base price per unit"`
	Qty   int     `short:"q" default:"1" help:"Number of units"`
	Front int     `default:"1" help:"Front print colors"`
	Back  int     `default:"0" help:"Back print colors"`
}

func (cmd *ManualCmd) Run(g *Globals) error {
	tables := pricing.DefaultBreakTables()
	bs, err := g.Breaks()
	if err == nil {
		tables, err = bs.LoadAll(context.Background())
	}
	if err != nil {
		g.Log.Warn("using default price breaks", zap.Error(err))
	}

	quote := pricing.PriceManual(pricing.ManualInput{
		BasePrice:   cmd.Base,
		Quantity:    cmd.Qty,
		FrontColors: cmd.Front,
		BackColors:  cmd.Back,
	}, tables)
	fmt.Fprint(g.Out, g.Render.RenderManualQuote(render.ManualQuoteView{Quote: quote}))
	return nil
}
