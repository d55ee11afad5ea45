package catalog

import "errors"

var (
	ErrNotFound      = errors.New("catalog row not found")
	ErrInvalidSource = errors.New("catalog source must be a list of records")
	ErrNoSource      = errors.New("no catalog source configured")
)

// Catalog is a read-only view over validated rows.
type Catalog interface {
	Rows() []Row
	Count() int
	Search(query string) []ProductGroup
	MethodsFor(style string) []string
	ColorsFor(style, method string) []ColorOption
	Find(style, method, color string) (Row, error)
}

// ProductGroup is one search hit: every row sharing a Style and Name.
type ProductGroup struct {
	Style          string
	Name           string
	Methods        []string
	Representative Row
}

func (g ProductGroup) HasMethod(method string) bool {
	for _, m := range g.Methods {
		if m == method {
			return true
		}
	}
	return false
}

type ColorOption struct {
	Color     string
	Hex       string
	BasePrice float64
}
