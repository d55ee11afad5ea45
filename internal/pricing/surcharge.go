package pricing

const (
	firstColorSurcharge      = 3.0
	additionalColorSurcharge = 1.5
)

// Surcharge is the per-unit charge for printing the given number of colors
// on one side of a garment.
func Surcharge(colors int) float64 {
	if colors <= 0 {
		return 0
	}
	return firstColorSurcharge + float64(colors-1)*additionalColorSurcharge
}
