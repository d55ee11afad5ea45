package catalog_test

import (
	"testing"

	"threadco/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectClassicTee(t *testing.T, idx *catalog.Index) catalog.Selection {
	t.Helper()
	results := idx.Search("classic")
	require.Len(t, results, 1)
	return catalog.NewSelection().WithProduct(idx, results[0])
}

func TestNewSelection(t *testing.T) {
	s := catalog.NewSelection()

	assert.False(t, s.HasProduct())
	assert.Equal(t, catalog.DefaultMethod, s.Method)
	assert.Equal(t, 1, s.Quantity)
	assert.Equal(t, 1, s.FrontColors)
	assert.Zero(t, s.BackColors)
}

func TestSelection_WithProduct(t *testing.T) {
	t.Run("seeds method and first color from the group", func(t *testing.T) {
		idx := newTestIndex(t)

		s := selectClassicTee(t, idx)

		assert.Equal(t, "5000", s.Style)
		assert.Equal(t, "Classic Tee", s.Name)
		assert.Equal(t, "Printing", s.Method)
		assert.Equal(t, "Red", s.Color)
	})

	t.Run("keeps counts from the previous selection", func(t *testing.T) {
		idx := newTestIndex(t)
		group := idx.Search("hoodie")[0]

		s := catalog.NewSelection().WithQuantity(24).WithColorCounts(2, 1).WithProduct(idx, group)

		assert.Equal(t, 24, s.Quantity)
		assert.Equal(t, 2, s.FrontColors)
		assert.Equal(t, 1, s.BackColors)
	})

	t.Run("returns a new selection without modifying the original", func(t *testing.T) {
		idx := newTestIndex(t)
		s1 := catalog.NewSelection()

		s2 := s1.WithProduct(idx, idx.Search("hoodie")[0])

		assert.False(t, s1.HasProduct())
		assert.True(t, s2.HasProduct())
	})
}

func TestSelection_WithMethod(t *testing.T) {
	t.Run("resets color when the new method lacks it", func(t *testing.T) {
		idx := newTestIndex(t)
		s := selectClassicTee(t, idx).WithColor(idx, "Navy")

		s = s.WithMethod(idx, "Embroidery")

		assert.Equal(t, "Embroidery", s.Method)
		assert.Equal(t, "Black", s.Color)
	})

	t.Run("unknown method falls back to the first available", func(t *testing.T) {
		idx := newTestIndex(t)

		s := selectClassicTee(t, idx).WithMethod(idx, "Screen")

		assert.Equal(t, "Printing", s.Method)
		assert.Equal(t, "Red", s.Color)
	})

	t.Run("clears color when the method has none", func(t *testing.T) {
		idx := catalog.NewIndex([]catalog.Row{
			{Style: "1", Name: "Cap", DecorationMethod: "Printing", BasePrice: 5},
		})
		s := catalog.NewSelection().WithProduct(idx, idx.Search("cap")[0])

		assert.Equal(t, "Printing", s.Method)
		assert.Empty(t, s.Color)
	})
}

func TestSelection_WithColor(t *testing.T) {
	t.Run("accepts an available color", func(t *testing.T) {
		idx := newTestIndex(t)

		s := selectClassicTee(t, idx).WithColor(idx, "Navy")

		assert.Equal(t, "Navy", s.Color)
	})

	t.Run("replaces an unavailable color with the first one", func(t *testing.T) {
		idx := newTestIndex(t)

		s := selectClassicTee(t, idx).WithColor(idx, "Black")

		assert.Equal(t, "Red", s.Color)
	})
}

func TestSelection_Counts(t *testing.T) {
	s := catalog.NewSelection()

	assert.Equal(t, 1, s.WithQuantity(0).Quantity)
	assert.Equal(t, 1, s.WithQuantity(-3).Quantity)
	assert.Equal(t, 48, s.WithQuantity(48).Quantity)

	s = s.WithColorCounts(-1, -2)
	assert.Zero(t, s.FrontColors)
	assert.Zero(t, s.BackColors)
}

func TestSelection_BaseRow(t *testing.T) {
	t.Run("resolves the row for the current choice", func(t *testing.T) {
		idx := newTestIndex(t)
		s := selectClassicTee(t, idx).WithColor(idx, "Navy")

		row, ok := s.BaseRow(idx)

		require.True(t, ok)
		assert.Equal(t, 10.5, row.BasePrice)
	})

	t.Run("no product has no row", func(t *testing.T) {
		idx := newTestIndex(t)

		_, ok := catalog.NewSelection().BaseRow(idx)

		assert.False(t, ok)
	})
}
