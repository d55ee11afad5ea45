package main

import (
	"context"
	"errors"
	"fmt"

	"threadco/cmd/threadco/render"
	"threadco/internal/breaks"
	"threadco/internal/format"
	"threadco/internal/pricing"
	"threadco/internal/ui"

	"go.uber.org/zap"
)

var errNothingToSet = errors.New("nothing to change: pass --min or --deduct")

type BreaksCmd struct {
	Show  BreaksShowCmd  `cmd:"" help:"Show a price break table"`
	Set   BreaksSetCmd   `cmd:"" help:"Change one tier of a price break table"`
	Edit  BreaksEditCmd  `cmd:"" help:"Edit a price break table interactively"`
	Reset BreaksResetCmd `cmd:"" help:"Restore a price break table to its defaults"`
}

type BreaksShowCmd struct {
	Table string `arg:"" optional:"" default:"quantity" help:"Table to show (quantity, front-color, back-color)"`
}

func (cmd *BreaksShowCmd) Run(g *Globals) error {
	kind, err := pricing.ParseTableKind(cmd.Table)
	if err != nil {
		return err
	}
	table := pricing.DefaultTable(kind)
	bs, err := g.Breaks()
	if err == nil {
		table, err = bs.Load(context.Background(), kind)
	}
	if err != nil {
		g.Log.Warn("showing default price breaks", zap.Error(err))
	}
	fmt.Fprint(g.Out, g.Render.RenderBreakTable(render.BreakTableView{Kind: kind, Table: table}))
	return nil
}

type BreaksSetCmd struct {
	Table  string   `arg:"" help:"Table to change (quantity, front-color, back-color)"`
	ID     int      `arg:"" help:"Tier ID"`
	Min    *float64 `help:"New threshold for the tier"`
	Deduct *float64 `help:"New per-unit deduction for the tier"`
}

func (cmd *BreaksSetCmd) Run(g *Globals) error {
	if cmd.Min == nil && cmd.Deduct == nil {
		return errNothingToSet
	}
	kind, err := pricing.ParseTableKind(cmd.Table)
	if err != nil {
		return err
	}

	bs, err := g.Breaks()
	if err != nil {
		return err
	}
	ctx := context.Background()
	draft, err := bs.Edit(ctx, kind)
	if err != nil {
		return err
	}
	if cmd.Min != nil {
		if err := draft.SetMinQty(cmd.ID, *cmd.Min); err != nil {
			return err
		}
	}
	if cmd.Deduct != nil {
		if err := draft.SetDeduct(cmd.ID, *cmd.Deduct); err != nil {
			return err
		}
	}

	table, err := draft.Commit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, g.Render.RenderBreakTable(render.BreakTableView{Kind: kind, Table: table}))
	return nil
}

type BreaksEditCmd struct {
	Table string `arg:"" optional:"" default:"quantity" help:"Table to edit (quantity, front-color, back-color)"`
}

func (cmd *BreaksEditCmd) Run(g *Globals) error {
	kind, err := pricing.ParseTableKind(cmd.Table)
	if err != nil {
		return err
	}

	bs, err := g.Breaks()
	if err != nil {
		return err
	}
	ctx := context.Background()
	draft, err := bs.Edit(ctx, kind)
	if err != nil {
		return err
	}

	in := ui.NewBreakTableInput(kind, draft.Rows())
	if err := g.RunForm(in.Form()); err != nil {
		draft.Cancel()
		return handleFormError(err)
	}
	return finishBreakEdit(ctx, g, draft, in)
}

// finishBreakEdit carries out the action chosen at the end of the form.
func finishBreakEdit(ctx context.Context, g *Globals, draft *breaks.Draft, in *ui.BreakTableInput) error {
	kind := draft.Kind()

	switch in.Action {
	case ui.ActionCancel:
		draft.Cancel()
		fmt.Fprintln(g.Out, "No changes saved.")
		return nil

	case ui.ActionReset:
		if err := draft.Reset(ctx); err != nil {
			return err
		}
		draft.Cancel()
		fmt.Fprint(g.Out, ui.RenderDone(kind.Title(), "Restored defaults", nil))
		return nil

	default:
		if err := in.Apply(draft); err != nil {
			return err
		}
		table, err := draft.Commit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(g.Out, ui.RenderDone(kind.Title(), "Saved", tierChecks(table)))
		return nil
	}
}

func tierChecks(table pricing.PriceBreakTable) []string {
	var checks []string
	for _, row := range table {
		if row.Deduct <= 0 {
			continue
		}
		checks = append(checks, fmt.Sprintf("−%s at ≥ %s", format.Money(row.Deduct), format.Threshold(row.MinQty)))
	}
	return checks
}

type BreaksResetCmd struct {
	Table string `arg:"" help:"Table to reset (quantity, front-color, back-color, all)"`
}

func (cmd *BreaksResetCmd) Run(g *Globals) error {
	kinds := pricing.TableKinds
	if cmd.Table != "all" {
		kind, err := pricing.ParseTableKind(cmd.Table)
		if err != nil {
			return err
		}
		kinds = []pricing.TableKind{kind}
	}

	bs, err := g.Breaks()
	if err != nil {
		return err
	}
	ctx := context.Background()
	var checks []string
	for _, kind := range kinds {
		if _, err := bs.Reset(ctx, kind); err != nil {
			return err
		}
		checks = append(checks, kind.Title())
	}
	fmt.Fprint(g.Out, ui.RenderDone("Price breaks reset", "Restored defaults", checks))
	return nil
}
