package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"threadco/internal/catalog"
	"threadco/internal/ui"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.ProductGroup
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple products match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple products match. Please be more specific:")
	for _, g := range e.Matches {
		fmt.Fprintf(w, "  - %s\n", ui.ProductLabel(g))
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findProduct resolves a query to one product group. An exact style match
// wins over other substring hits.
func findProduct(cat catalog.Catalog, query string) (catalog.ProductGroup, error) {
	groups := cat.Search(query)
	if len(groups) == 0 {
		return catalog.ProductGroup{}, fmt.Errorf("no product found matching: %s", query)
	}
	if len(groups) == 1 {
		return groups[0], nil
	}

	var exact []catalog.ProductGroup
	for _, g := range groups {
		if strings.EqualFold(g.Style, strings.TrimSpace(query)) {
			exact = append(exact, g)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	return catalog.ProductGroup{}, &AmbiguousMatchError{Query: query, Matches: groups}
}
