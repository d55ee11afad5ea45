package main

import (
	"fmt"

	"threadco/cmd/threadco/render"
)

type SearchCmd struct {
	Query string `arg:"" help:"Style or name to search for (case-insensitive)"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}
	groups := cat.Search(cmd.Query)
	fmt.Fprint(g.Out, g.Render.RenderSearchResults(render.SearchView{Groups: groups}))
	return nil
}
