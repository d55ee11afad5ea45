package pricing

import "threadco/internal/catalog"

// CatalogQuote prices a catalog selection. Priced is false when there was
// no base row, in which case the unit and total prices are zero.
type CatalogQuote struct {
	Priced         bool
	BasePrice      float64
	FrontSurcharge float64
	BackSurcharge  float64
	UnitPrice      float64
	TotalPrice     float64
	Quantity       int
}

// PriceCatalog computes unit = base + front surcharge + back surcharge and
// total = unit * quantity, with non-positive quantities totalling zero.
// Values are not rounded.
func PriceCatalog(row *catalog.Row, frontColors, backColors, quantity int) CatalogQuote {
	q := CatalogQuote{
		FrontSurcharge: Surcharge(frontColors),
		BackSurcharge:  Surcharge(backColors),
		Quantity:       quantity,
	}
	if row == nil {
		return q
	}

	q.Priced = true
	q.BasePrice = row.BasePrice
	q.UnitPrice = q.BasePrice + q.FrontSurcharge + q.BackSurcharge
	q.TotalPrice = q.UnitPrice * float64(max(quantity, 0))
	return q
}

// PriceSelection resolves the selection's base row and prices it.
func PriceSelection(cat catalog.Catalog, s catalog.Selection) CatalogQuote {
	var row *catalog.Row
	if r, ok := s.BaseRow(cat); ok {
		row = &r
	}
	return PriceCatalog(row, s.FrontColors, s.BackColors, s.Quantity)
}

type ManualInput struct {
	BasePrice   float64
	Quantity    int
	FrontColors int
	BackColors  int
}

// Clamped returns the input with base price at least 0 (non-finite becomes
// 0), quantity at least 1 and color counts at least 0.
func (in ManualInput) Clamped() ManualInput {
	return ManualInput{
		BasePrice:   ClampFloat(in.BasePrice, 0, 0),
		Quantity:    ClampInt(in.Quantity, 1),
		FrontColors: ClampInt(in.FrontColors, 0),
		BackColors:  ClampInt(in.BackColors, 0),
	}
}

// ManualQuote itemizes a manual-mode price. A nil break means no tier of
// that table applied.
type ManualQuote struct {
	Input          ManualInput
	FrontSurcharge float64
	BackSurcharge  float64
	FrontBreak     *PriceBreakRow
	BackBreak      *PriceBreakRow
	QuantityBreak  *PriceBreakRow
	EffectiveFront float64
	EffectiveBack  float64
	UnitPrice      float64
	TotalPrice     float64
}

func (q ManualQuote) FrontDeduct() float64    { return deductOf(q.FrontBreak) }
func (q ManualQuote) BackDeduct() float64     { return deductOf(q.BackBreak) }
func (q ManualQuote) QuantityDeduct() float64 { return deductOf(q.QuantityBreak) }

// deductOf relies on ResolveBreak only returning rows whose deduction is
// finite and positive.
func deductOf(r *PriceBreakRow) float64 {
	if r == nil {
		return 0
	}
	return r.Deduct
}

// PriceManual applies the color breaks to their surcharges, then the
// quantity break to the per-unit sum. Neither the effective surcharges nor
// the unit price drop below zero.
func PriceManual(in ManualInput, tables BreakTables) ManualQuote {
	in = in.Clamped()
	q := ManualQuote{
		Input:          in,
		FrontSurcharge: Surcharge(in.FrontColors),
		BackSurcharge:  Surcharge(in.BackColors),
		FrontBreak:     resolve(tables.FrontColor, float64(in.FrontColors)),
		BackBreak:      resolve(tables.BackColor, float64(in.BackColors)),
		QuantityBreak:  resolve(tables.Quantity, float64(in.Quantity)),
	}

	q.EffectiveFront = max(0, q.FrontSurcharge-q.FrontDeduct())
	q.EffectiveBack = max(0, q.BackSurcharge-q.BackDeduct())
	raw := in.BasePrice + q.EffectiveFront + q.EffectiveBack
	q.UnitPrice = max(0, raw-q.QuantityDeduct())
	q.TotalPrice = q.UnitPrice * float64(in.Quantity)
	return q
}

func resolve(table PriceBreakTable, measured float64) *PriceBreakRow {
	r, ok := ResolveBreak(table, measured)
	if !ok {
		return nil
	}
	return &r
}
