package proptest

import (
	"math"

	"threadco/internal/catalog"
	"threadco/internal/pricing"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	styleGen   = rapid.StringMatching(`[0-9]{2,5}[A-Z]?`)
	nameGen    = rapid.SampledFrom([]string{"Classic Tee", "heavy hoodie", "Ladies Tee", "Tank", "Zip Hoodie", "Polo", "crewneck"})
	methodGen  = rapid.SampledFrom([]string{"Printing", "Embroidery", "DTG", "Screen"})
	colorGen   = rapid.SampledFrom([]string{"", "Red", "Navy", "Black", "White", "Heather Grey"})
	queryGen   = rapid.StringMatching(`[a-zA-Z0-9 ]{1,6}`)
	countGen   = rapid.IntRange(-5, 20)
	kindGen    = rapid.SampledFrom(pricing.TableKinds)
)

func priceGen() *rapid.Generator[float64] {
	return rapid.OneOf(
		rapid.Float64Range(0, 500),
		rapid.Just(0.0),
		rapid.Just(4.5),
		rapid.Float64Range(-50, -0.01),
		rapid.Just(math.NaN()),
		rapid.Just(math.Inf(1)),
	)
}

func rowGen() *rapid.Generator[catalog.Row] {
	return rapid.Custom(func(t *rapid.T) catalog.Row {
		return catalog.Row{
			Style:            styleGen.Draw(t, "style"),
			Name:             nameGen.Draw(t, "name"),
			DecorationMethod: methodGen.Draw(t, "method"),
			Color:            colorGen.Draw(t, "color"),
			BasePrice:        priceGen().Draw(t, "basePrice"),
		}
	})
}

func rowsGen(minCount, maxCount int) *rapid.Generator[[]catalog.Row] {
	return rapid.SliceOfN(rowGen(), minCount, maxCount)
}

// tableGen builds a break table with ids 1..n and arbitrary thresholds,
// in no particular order.
func tableGen(minCount, maxCount int) *rapid.Generator[pricing.PriceBreakTable] {
	return rapid.Custom(func(t *rapid.T) pricing.PriceBreakTable {
		n := rapid.IntRange(minCount, maxCount).Draw(t, "tiers")
		table := make(pricing.PriceBreakTable, n)
		for i := range table {
			table[i] = pricing.PriceBreakRow{
				ID:     i + 1,
				MinQty: float64(rapid.IntRange(0, 200).Draw(t, "minQty")),
				Deduct: rapid.SampledFrom([]float64{0, 0, 0.25, 0.5, 1, 2.75}).Draw(t, "deduct"),
			}
		}
		return table
	})
}

func breakTablesGen() *rapid.Generator[pricing.BreakTables] {
	return rapid.Custom(func(t *rapid.T) pricing.BreakTables {
		return pricing.BreakTables{
			Quantity:   tableGen(minTiers, maxTiers).Draw(t, "quantity"),
			FrontColor: tableGen(minTiers, maxTiers).Draw(t, "frontColor"),
			BackColor:  tableGen(minTiers, maxTiers).Draw(t, "backColor"),
		}
	})
}

func manualInputGen() *rapid.Generator[pricing.ManualInput] {
	return rapid.Custom(func(t *rapid.T) pricing.ManualInput {
		return pricing.ManualInput{
			BasePrice:   priceGen().Draw(t, "base"),
			Quantity:    rapid.IntRange(-10, 5000).Draw(t, "qty"),
			FrontColors: countGen.Draw(t, "front"),
			BackColors:  countGen.Draw(t, "back"),
		}
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{"),
		rapid.Just("null"),
		rapid.Just(`{"id":1}`),
		rapid.Just(`"text"`),
		rapid.Just("42"),
		rapid.Just(`[{"id":"one"}]`),
		rapid.Just(`[1,2,3]`),
		rapid.StringMatching(`[a-z0-9{}:," ]{1,40}`),
	)
}
