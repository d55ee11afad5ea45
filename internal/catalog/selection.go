package catalog

const DefaultMethod = "Printing"

// Selection is the user's current choice in catalog mode. An empty Style
// means no product is selected; an empty Color means no color.
type Selection struct {
	Style       string
	Name        string
	Method      string
	Color       string
	Quantity    int
	FrontColors int
	BackColors  int
}

func NewSelection() Selection {
	return Selection{
		Method:      DefaultMethod,
		Quantity:    1,
		FrontColors: 1,
	}
}

func (s Selection) HasProduct() bool {
	return s.Style != ""
}

// WithProduct selects a search result. The method is seeded from the
// group's representative row and the color resets to the first available.
func (s Selection) WithProduct(cat Catalog, g ProductGroup) Selection {
	newS := s
	newS.Style = g.Style
	newS.Name = g.Name
	newS.Method = g.Representative.DecorationMethod
	if newS.Method == "" {
		newS.Method = DefaultMethod
	}
	newS.Color = ""
	return newS.Validate(cat)
}

func (s Selection) WithMethod(cat Catalog, method string) Selection {
	newS := s
	newS.Method = method
	return newS.Validate(cat)
}

func (s Selection) WithColor(cat Catalog, color string) Selection {
	newS := s
	newS.Color = color
	return newS.Validate(cat)
}

// WithQuantity keeps positive quantities and treats anything else as 1.
func (s Selection) WithQuantity(qty int) Selection {
	newS := s
	if qty <= 0 {
		qty = 1
	}
	newS.Quantity = qty
	return newS
}

func (s Selection) WithColorCounts(front, back int) Selection {
	newS := s
	newS.FrontColors = max(0, front)
	newS.BackColors = max(0, back)
	return newS
}

// Validate re-applies the membership rules: Method must be one of the
// style's methods and Color one of the colors for (Style, Method). A value
// that is not a member is replaced by the first available option, or
// cleared when there is none.
func (s Selection) Validate(cat Catalog) Selection {
	if !s.HasProduct() {
		return s
	}
	newS := s

	methods := cat.MethodsFor(newS.Style)
	if !contains(methods, newS.Method) {
		newS.Method = ""
		if len(methods) > 0 {
			newS.Method = methods[0]
		}
	}

	colors := cat.ColorsFor(newS.Style, newS.Method)
	if !hasColor(colors, newS.Color) {
		newS.Color = ""
		if len(colors) > 0 {
			newS.Color = colors[0].Color
		}
	}
	return newS
}

// BaseRow resolves the priced row for the selection.
func (s Selection) BaseRow(cat Catalog) (Row, bool) {
	if !s.HasProduct() {
		return Row{}, false
	}
	r, err := cat.Find(s.Style, s.Method, s.Color)
	if err != nil {
		return Row{}, false
	}
	return r, true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func hasColor(colors []ColorOption, color string) bool {
	for _, c := range colors {
		if c.Color == color {
			return true
		}
	}
	return false
}
