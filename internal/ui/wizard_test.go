package ui

import (
	"context"
	"regexp"
	"testing"

	"threadco/internal/breaks"
	"threadco/internal/catalog"
	"threadco/internal/pricing"
	"threadco/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderWizard(t *testing.T) {
	t.Run("fields render collapsed with value", func(t *testing.T) {
		fields := []Field{{Label: "Product", Value: "5000 - Classic Tee"}}
		output := stripANSI(RenderWizard("Quote", fields))

		assert.Contains(t, output, "◇ Product · 5000 - Classic Tee")
	})

	t.Run("title renders after top border", func(t *testing.T) {
		output := stripANSI(RenderWizard("Catalog quote", []Field{{Label: "Color", Value: "Red"}}))

		assert.Contains(t, output, "┌ Catalog quote")
		assert.Contains(t, output, "└")
	})

	t.Run("empty-value field produces no output line", func(t *testing.T) {
		fields := []Field{
			{Label: "Method", Value: "Printing"},
			{Label: "Color"},
		}
		output := stripANSI(RenderWizard("Quote", fields))

		assert.NotContains(t, output, "Color")
	})
}

func TestRenderDone(t *testing.T) {
	output := stripANSI(RenderDone("Saved Quantity price breaks", "threadco_price_breaks_v1", []string{"2 tiers with deductions"}))

	assert.Contains(t, output, "┌ ◆ Saved Quantity price breaks")
	assert.Contains(t, output, "│ threadco_price_breaks_v1")
	assert.Contains(t, output, "│ ✓ 2 tiers with deductions")
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber(""))
	assert.NoError(t, ValidateNumber(" 1.5 "))
	assert.NoError(t, ValidateNumber("-2"))
	assert.ErrorIs(t, ValidateNumber("abc"), ErrNotANumber)
}

func TestBreakTableInput(t *testing.T) {
	ctx := context.Background()

	t.Run("prefills text from the table", func(t *testing.T) {
		in := NewBreakTableInput(pricing.QuantityBreaks, pricing.PriceBreakTable{{ID: 1, MinQty: 12, Deduct: 0.5}})

		require.Len(t, in.Rows, 1)
		assert.Equal(t, "12", in.Rows[0].MinQty)
		assert.Equal(t, "0.5", in.Rows[0].Deduct)
		assert.Equal(t, ActionSave, in.Action)
	})

	t.Run("apply clamps entered values into the draft", func(t *testing.T) {
		s := breaks.NewStore(store.NewMemoryStore(), nil)
		d, err := s.Edit(ctx, pricing.FrontColorBreaks)
		require.NoError(t, err)
		in := NewBreakTableInput(pricing.FrontColorBreaks, d.Rows())
		in.Rows[0].Deduct = "1.25"
		in.Rows[1].Deduct = "-4"
		in.Rows[2].MinQty = ""

		require.NoError(t, in.Apply(d))

		rows := d.Rows()
		assert.Equal(t, 1.25, rows[0].Deduct)
		assert.Zero(t, rows[1].Deduct)
		assert.Zero(t, rows[2].MinQty)
	})

	t.Run("form builds without panicking", func(t *testing.T) {
		in := NewBreakTableInput(pricing.BackColorBreaks, pricing.DefaultTable(pricing.BackColorBreaks))

		assert.NotNil(t, in.Form())
	})
}

func TestOptions(t *testing.T) {
	group := catalog.ProductGroup{Style: "5000", Name: "Classic Tee", Methods: []string{"Printing", "Embroidery"}}

	assert.Equal(t, "5000 - Classic Tee (Printing / Embroidery)", ProductLabel(group))
	assert.Len(t, ProductOptions([]catalog.ProductGroup{group, group}), 2)
	assert.Len(t, MethodOptions(group.Methods), 2)

	assert.Equal(t, "Red #ff0000 · $10.00", ColorLabel(catalog.ColorOption{Color: "Red", Hex: "#ff0000", BasePrice: 10}))
	assert.Equal(t, "(no color) · $4.50", ColorLabel(catalog.ColorOption{BasePrice: 4.5}))
	opts := ColorOptions([]catalog.ColorOption{{Color: "Red"}, {Color: "Navy"}})
	require.Len(t, opts, 2)
	assert.Equal(t, "Navy", opts[1].Value)
}
