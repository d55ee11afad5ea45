package main

import (
	"io"

	"threadco/cmd/threadco/render"
	"threadco/internal/breaks"
	"threadco/internal/catalog"
	"threadco/internal/store"

	"go.uber.org/zap"
)

type Globals struct {
	Out    io.Writer
	Render render.Renderer
	Log    *zap.Logger

	CatalogPath string
	LoadCatalog func(path string) (catalog.Catalog, error)
	// RunForm runs an interactive form; tests swap it for a scripted one.
	RunForm func(f formRunner) error
	// OpenStore opens the price break backend. It runs at most once.
	OpenStore func() (store.Store, error)

	cat    catalog.Catalog
	kv     store.Store
	breaks *breaks.Store
}

type formRunner interface {
	Run() error
}

func defaultLoadCatalog(path string) (catalog.Catalog, error) {
	return catalog.Load(path)
}

func defaultRunForm(f formRunner) error {
	return f.Run()
}

// Catalog loads the catalog source on first use.
func (g *Globals) Catalog() (catalog.Catalog, error) {
	if g.cat != nil {
		return g.cat, nil
	}
	cat, err := g.LoadCatalog(g.CatalogPath)
	if err != nil {
		return nil, err
	}
	g.Log.Debug("catalog loaded", zap.String("path", g.CatalogPath), zap.Int("rows", cat.Count()))
	g.cat = cat
	return cat, nil
}

// Breaks opens the price break store on first use, so commands that only
// read the catalog never touch the backend.
func (g *Globals) Breaks() (*breaks.Store, error) {
	if g.breaks != nil {
		return g.breaks, nil
	}
	kv, err := g.OpenStore()
	if err != nil {
		return nil, err
	}
	g.Log.Debug("price break store opened")
	g.kv = kv
	g.breaks = breaks.NewStore(kv, g.Log)
	return g.breaks, nil
}

// Close releases the store backend if it was opened.
func (g *Globals) Close() error {
	if g.kv == nil {
		return nil
	}
	err := g.kv.Close()
	g.kv, g.breaks = nil, nil
	return err
}
