package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Index is an immutable in-memory Catalog. Rows keep their source order.
type Index struct {
	rows []Row
}

// NewIndex drops invalid rows and indexes the rest.
func NewIndex(rows []Row) *Index {
	return &Index{rows: ValidRows(rows)}
}

func (c *Index) Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *Index) Count() int {
	return len(c.rows)
}

type groupKey struct {
	style, name string
}

func (c *Index) Search(query string) []ProductGroup {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var order []groupKey
	groups := make(map[groupKey]*ProductGroup)

	for _, r := range c.rows {
		if !matchesQuery(r, query) {
			continue
		}
		key := groupKey{r.Style, r.Name}
		g, ok := groups[key]
		if !ok {
			g = &ProductGroup{Style: r.Style, Name: r.Name, Representative: r}
			groups[key] = g
			order = append(order, key)
		}
		if !g.HasMethod(r.DecorationMethod) {
			g.Methods = append(g.Methods, r.DecorationMethod)
		}
	}

	results := make([]ProductGroup, 0, len(order))
	for _, key := range order {
		results = append(results, *groups[key])
	}
	sortGroups(results)
	return results
}

func matchesQuery(r Row, query string) bool {
	return strings.Contains(strings.ToLower(r.Style), query) ||
		strings.Contains(strings.ToLower(r.Name), query)
}

// sortGroups orders by Style then Name using English collation, so
// mixed-case and accented names interleave instead of sorting by byte.
func sortGroups(groups []ProductGroup) {
	col := collate.New(language.English)
	sort.SliceStable(groups, func(i, j int) bool {
		if c := col.CompareString(groups[i].Style, groups[j].Style); c != 0 {
			return c < 0
		}
		return col.CompareString(groups[i].Name, groups[j].Name) < 0
	})
}

func (c *Index) MethodsFor(style string) []string {
	var methods []string
	seen := make(map[string]bool)
	for _, r := range c.rows {
		if r.Style != style || seen[r.DecorationMethod] {
			continue
		}
		seen[r.DecorationMethod] = true
		methods = append(methods, r.DecorationMethod)
	}
	return methods
}

func (c *Index) ColorsFor(style, method string) []ColorOption {
	var colors []ColorOption
	for _, r := range c.rows {
		if r.Style == style && r.DecorationMethod == method {
			colors = append(colors, ColorOption{Color: r.Color, Hex: r.HexColor, BasePrice: r.BasePrice})
		}
	}
	return colors
}

// Find returns the base row for a style, method and color. An empty color
// never matches.
func (c *Index) Find(style, method, color string) (Row, error) {
	if color == "" {
		return Row{}, ErrNotFound
	}
	for _, r := range c.rows {
		if r.Style == style && r.DecorationMethod == method && r.Color == color {
			return r, nil
		}
	}
	return Row{}, ErrNotFound
}
