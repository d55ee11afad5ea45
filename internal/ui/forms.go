package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"threadco/internal/breaks"
	"threadco/internal/catalog"
	"threadco/internal/format"
	"threadco/internal/pricing"

	"github.com/charmbracelet/huh"
)

var ErrNotANumber = errors.New("Enter a number")

// ValidateNumber accepts blank input (treated as 0 later) or any number.
func ValidateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return ErrNotANumber
	}
	return nil
}

type BreakAction string

const (
	ActionSave   BreakAction = "save"
	ActionReset  BreakAction = "reset"
	ActionCancel BreakAction = "cancel"
)

type breakRowInput struct {
	ID     int
	MinQty string
	Deduct string
}

// BreakTableInput holds the text fields of a break-table form.
type BreakTableInput struct {
	Kind   pricing.TableKind
	Rows   []breakRowInput
	Action BreakAction
}

func NewBreakTableInput(kind pricing.TableKind, table pricing.PriceBreakTable) *BreakTableInput {
	in := &BreakTableInput{Kind: kind, Action: ActionSave}
	for _, r := range table {
		in.Rows = append(in.Rows, breakRowInput{
			ID:     r.ID,
			MinQty: strconv.FormatFloat(r.MinQty, 'f', -1, 64),
			Deduct: strconv.FormatFloat(r.Deduct, 'f', -1, 64),
		})
	}
	return in
}

// Form builds one group per tier plus a final action choice.
func (in *BreakTableInput) Form() *huh.Form {
	var groups []*huh.Group
	for i := range in.Rows {
		row := &in.Rows[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Tier %d · %s", row.ID, in.Kind.ThresholdLabel())).
				Value(&row.MinQty).
				Validate(ValidateNumber),
			huh.NewInput().
				Title(fmt.Sprintf("Tier %d · Deduct per unit ($)", row.ID)).
				Value(&row.Deduct).
				Validate(ValidateNumber),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewSelect[BreakAction]().
			Title(in.Kind.Title()).
			Options(
				huh.NewOption("Save", ActionSave),
				huh.NewOption("Reset to defaults", ActionReset),
				huh.NewOption("Cancel", ActionCancel),
			).
			Value(&in.Action),
	))

	return huh.NewForm(groups...).WithTheme(WizardTheme())
}

// Apply copies the entered values into the draft, clamping each one.
func (in *BreakTableInput) Apply(d *breaks.Draft) error {
	for _, row := range in.Rows {
		if err := d.SetMinQty(row.ID, pricing.ParseNumber(row.MinQty, 0, 0)); err != nil {
			return err
		}
		if err := d.SetDeduct(row.ID, pricing.ParseNumber(row.Deduct, 0, 0)); err != nil {
			return err
		}
	}
	return nil
}

func ProductLabel(g catalog.ProductGroup) string {
	return fmt.Sprintf("%s - %s (%s)", g.Style, g.Name, strings.Join(g.Methods, " / "))
}

func ProductOptions(groups []catalog.ProductGroup) []huh.Option[int] {
	opts := make([]huh.Option[int], len(groups))
	for i, g := range groups {
		opts[i] = huh.NewOption(ProductLabel(g), i)
	}
	return opts
}

func MethodOptions(methods []string) []huh.Option[string] {
	return huh.NewOptions(methods...)
}

func ColorLabel(c catalog.ColorOption) string {
	label := c.Color
	if label == "" {
		label = "(no color)"
	}
	if c.Hex != "" {
		label += " " + c.Hex
	}
	return label + " · " + format.Money(c.BasePrice)
}

func ColorOptions(colors []catalog.ColorOption) []huh.Option[string] {
	opts := make([]huh.Option[string], len(colors))
	for i, c := range colors {
		opts[i] = huh.NewOption(ColorLabel(c), c.Color)
	}
	return opts
}
