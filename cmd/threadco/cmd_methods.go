package main

import (
	"fmt"

	"threadco/internal/catalog"
	"threadco/internal/ui"
)

type MethodsCmd struct {
	Product string `arg:"" help:"Product style or name"`
}

func (cmd *MethodsCmd) Run(g *Globals) error {
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

	for _, m := range cat.MethodsFor(group.Style) {
		fmt.Fprintln(g.Out, m)
	}
	return nil
}

type ColorsCmd struct {
	Product string `arg:"" help:"Product style or name"`
	Method  string `help:"Decoration method (defaults to the product's first method)"`
}

func (cmd *ColorsCmd) Run(g *Globals) error {
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

	sel := catalog.NewSelection().WithProduct(cat, group)
	if cmd.Method != "" {
		sel = sel.WithMethod(cat, cmd.Method)
	}

	colors := cat.ColorsFor(sel.Style, sel.Method)
	if len(colors) == 0 {
		fmt.Fprintf(g.Out, "No colors for %s.\n", sel.Method)
		return nil
	}
	fmt.Fprintf(g.Out, "%s:\n", sel.Method)
	for _, c := range colors {
		fmt.Fprintf(g.Out, "  %s\n", ui.ColorLabel(c))
	}
	return nil
}
