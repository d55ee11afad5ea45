package main

import (
	"context"
	"fmt"
	"os"

	"threadco/cmd/threadco/render"
	"threadco/internal/config"
	"threadco/internal/logging"
	"threadco/internal/store"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type CLI struct {
	Search  SearchCmd  `cmd:"" aliases:"s" help:"Search the catalog by style or name"`
	Methods MethodsCmd `cmd:"" help:"List decoration methods for a product"`
	Colors  ColorsCmd  `cmd:"" help:"List colors for a product and method"`
	Quote   QuoteCmd   `cmd:"" aliases:"q" help:"Price a catalog product"`
	Browse  BrowseCmd  `cmd:"" aliases:"b" help:"Pick a catalog product interactively and price it"`
	Manual  ManualCmd  `cmd:"" aliases:"m" help:"Price a manual base price with the saved price breaks"`
	Breaks  BreaksCmd  `cmd:"" help:"Show or edit the manual price break tables"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file (.json, .yaml, .csv, .xlsx)"`
	StoreKind   string `name:"store" help:"Price break store backend (yaml, sqlite, redis, memory)"`
	StorePath   string `name:"store-path" help:"Path to the store file or database"`
	Ephemeral   bool   `help:"Keep price break edits in memory only"`
	EnvFile     string `name:"env-file" default:".env" help:"Dotenv file to read settings from"`

	globals *Globals    `kong:"-"`
	log     *zap.Logger `kong:"-"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	settings, err := config.Load(c.EnvFile)
	if err != nil {
		return err
	}
	c.applyOverrides(&settings)

	log, err := logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	c.log = log

	opts, err := settings.StoreOptions()
	if err != nil {
		return err
	}

	catalogPath := settings.Catalog
	if catalogPath != "" {
		if catalogPath, err = config.ExpandPath(catalogPath); err != nil {
			return fmt.Errorf("failed to resolve catalog path: %w", err)
		}
	}

	globals := &Globals{
		Out:         os.Stdout,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		Log:         log,
		CatalogPath: catalogPath,
		LoadCatalog: defaultLoadCatalog,
		RunForm:     defaultRunForm,
		OpenStore: func() (store.Store, error) {
			return store.Open(context.Background(), opts, log)
		},
	}
	c.globals = globals
	ctx.Bind(globals)
	return nil
}

func (c *CLI) applyOverrides(s *config.Settings) {
	if c.CatalogPath != "" {
		s.Catalog = c.CatalogPath
	}
	if c.StoreKind != "" {
		s.Store = c.StoreKind
	}
	if c.StorePath != "" {
		s.StorePath = c.StorePath
	}
	if c.Ephemeral {
		s.Store = string(store.BackendMemory)
	}
}

func (c *CLI) close() {
	if c.globals != nil {
		if err := c.globals.Close(); err != nil {
			c.log.Warn("failed to close store", zap.Error(err))
		}
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("threadco"),
		kong.Description("Catalog browser and pricing calculator for print and apparel orders"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	cli.close()
	ctx.FatalIfErrorf(err)
}
