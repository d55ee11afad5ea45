package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"threadco/cmd/threadco/render"
	"threadco/internal/catalog"
	"threadco/internal/format"
	"threadco/internal/pricing"
	"threadco/internal/ui"

	"github.com/charmbracelet/huh"
)

type BrowseCmd struct {
	Query string `arg:"" optional:"" help:"Start with this search instead of prompting"`
}

// browseInput holds the raw form values of one browse session.
type browseInput struct {
	Query   string
	Product int
	Method  string
	Color   string
	Qty     string
	Front   string
	Back    string
}

func validateQuery(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Enter a style or name")
	}
	return nil
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	in := browseInput{Query: cmd.Query}
	if strings.TrimSpace(in.Query) == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Style number or product name").
				Value(&in.Query).
				Validate(validateQuery),
		)).WithTheme(ui.WizardTheme())
		if err := g.RunForm(form); err != nil {
			return handleFormError(err)
		}
	}

	groups := cat.Search(in.Query)
	if len(groups) == 0 {
		fmt.Fprint(g.Out, g.Render.RenderSearchResults(render.SearchView{}))
		return nil
	}
	if len(groups) > 1 {
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title("Product").
				Options(ui.ProductOptions(groups)...).
				Value(&in.Product),
		)).WithTheme(ui.WizardTheme())
		if err := g.RunForm(form); err != nil {
			return handleFormError(err)
		}
	}
	if in.Product < 0 || in.Product >= len(groups) {
		in.Product = 0
	}

	sel := catalog.NewSelection().WithProduct(cat, groups[in.Product])
	in.Method = sel.Method
	if err := g.RunForm(methodForm(cat, sel, &in)); err != nil {
		return handleFormError(err)
	}
	sel = sel.WithMethod(cat, in.Method)

	in.Color = sel.Color
	in.Qty = strconv.Itoa(sel.Quantity)
	in.Front = strconv.Itoa(sel.FrontColors)
	in.Back = strconv.Itoa(sel.BackColors)
	if err := g.RunForm(detailsForm(cat, sel, &in)); err != nil {
		return handleFormError(err)
	}
	sel = applyDetails(cat, sel, in)

	quote := pricing.PriceSelection(cat, sel)
	fmt.Fprint(g.Out, ui.RenderWizard("Quote", browseFields(in, sel)))
	fmt.Fprint(g.Out, g.Render.RenderCatalogQuote(render.CatalogQuoteView{Selection: sel, Quote: quote}))
	return nil
}

func methodForm(cat catalog.Catalog, sel catalog.Selection, in *browseInput) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Decoration method").
			Options(ui.MethodOptions(cat.MethodsFor(sel.Style))...).
			Value(&in.Method),
	)).WithTheme(ui.WizardTheme())
}

func detailsForm(cat catalog.Catalog, sel catalog.Selection, in *browseInput) *huh.Form {
	var fields []huh.Field
	if colors := cat.ColorsFor(sel.Style, sel.Method); len(colors) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Color").
			Options(ui.ColorOptions(colors)...).
			Value(&in.Color))
	}
	fields = append(fields,
		huh.NewInput().Title("Quantity").Value(&in.Qty).Validate(ui.ValidateNumber),
		huh.NewInput().Title("Front colors").Value(&in.Front).Validate(ui.ValidateNumber),
		huh.NewInput().Title("Back colors").Value(&in.Back).Validate(ui.ValidateNumber),
	)
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(ui.WizardTheme())
}

// applyDetails folds the entered color and counts into the selection.
// Blank or invalid counts fall back to 1 unit and 0 colors.
func applyDetails(cat catalog.Catalog, sel catalog.Selection, in browseInput) catalog.Selection {
	qty := pricing.ParseCount(in.Qty, 0, 1)
	front := pricing.ParseCount(in.Front, 0, 0)
	back := pricing.ParseCount(in.Back, 0, 0)
	return sel.WithColor(cat, in.Color).WithQuantity(qty).WithColorCounts(front, back)
}

func browseFields(in browseInput, sel catalog.Selection) []ui.Field {
	return []ui.Field{
		{Label: "Search", Value: strings.TrimSpace(in.Query)},
		{Label: "Product", Value: sel.Style + " - " + sel.Name},
		{Label: "Method", Value: sel.Method},
		{Label: "Color", Value: sel.Color},
		{Label: "Quantity", Value: format.Count(sel.Quantity)},
		{Label: "Colors", Value: fmt.Sprintf("%d front / %d back", sel.FrontColors, sel.BackColors)},
	}
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
