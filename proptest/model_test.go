package proptest

import (
	"context"
	"errors"

	"threadco/internal/breaks"
	"threadco/internal/pricing"

	"pgregory.net/rapid"
)

// BreakModel is the reference state: the committed tables plus at most one
// open draft.
type BreakModel struct {
	tables    map[pricing.TableKind]pricing.PriceBreakTable
	draftKind pricing.TableKind
	draft     pricing.PriceBreakTable
	open      bool
}

func newBreakModel() *BreakModel {
	m := &BreakModel{tables: make(map[pricing.TableKind]pricing.PriceBreakTable)}
	for _, kind := range pricing.TableKinds {
		m.tables[kind] = pricing.DefaultTable(kind)
	}
	return m
}

func (m *BreakModel) Open(kind pricing.TableKind) {
	m.draftKind = kind
	m.draft = m.tables[kind].Clone()
	m.open = true
}

func (m *BreakModel) set(id int, fn func(*pricing.PriceBreakRow)) bool {
	for i := range m.draft {
		if m.draft[i].ID == id {
			fn(&m.draft[i])
			return true
		}
	}
	return false
}

func (m *BreakModel) Commit() {
	m.tables[m.draftKind] = m.draft.Sorted()
	m.open = false
}

func (m *BreakModel) Cancel() {
	m.open = false
}

func (m *BreakModel) ResetDraft() {
	m.tables[m.draftKind] = pricing.DefaultTable(m.draftKind)
	m.draft = m.tables[m.draftKind].Clone()
}

func (m *BreakModel) Reset(kind pricing.TableKind) {
	m.tables[kind] = pricing.DefaultTable(kind)
}

func (m *BreakModel) IDs() []int {
	ids := make([]int, len(m.draft))
	for i, r := range m.draft {
		ids[i] = r.ID
	}
	return ids
}

// CheckedBreaks drives the real store and draft alongside the model and
// fails on the first divergence.
type CheckedBreaks struct {
	real  *breaks.Store
	draft *breaks.Draft
	model *BreakModel
	t     *rapid.T
}

func NewCheckedBreaks(t *rapid.T, real *breaks.Store) *CheckedBreaks {
	return &CheckedBreaks{real: real, model: newBreakModel(), t: t}
}

func (c *CheckedBreaks) Model() *BreakModel {
	return c.model
}

func (c *CheckedBreaks) Open(kind pricing.TableKind) {
	d, err := c.real.Edit(context.Background(), kind)
	if err != nil {
		c.t.Fatalf("Edit(%s): %v", kind, err)
	}
	c.draft = d
	c.model.Open(kind)
	assertTablesEqual(c.t, c.model.draft, d.Rows())
}

func (c *CheckedBreaks) SetMinQty(id int, v float64) {
	err := c.draft.SetMinQty(id, v)
	ok := c.model.set(id, func(r *pricing.PriceBreakRow) { r.MinQty = pricing.ClampFloat(v, 0, 0) })
	c.checkSetResult(id, ok, err)
}

func (c *CheckedBreaks) SetDeduct(id int, v float64) {
	err := c.draft.SetDeduct(id, v)
	ok := c.model.set(id, func(r *pricing.PriceBreakRow) { r.Deduct = pricing.ClampFloat(v, 0, 0) })
	c.checkSetResult(id, ok, err)
}

func (c *CheckedBreaks) checkSetResult(id int, ok bool, err error) {
	if ok && err != nil {
		c.t.Fatalf("set on tier %d: %v", id, err)
	}
	if !ok && !errors.Is(err, breaks.ErrUnknownRow) {
		c.t.Fatalf("set on missing tier %d: got %v, want ErrUnknownRow", id, err)
	}
	assertTablesEqual(c.t, c.model.draft, c.draft.Rows())
}

func (c *CheckedBreaks) Commit() {
	table, err := c.draft.Commit(context.Background())
	if err != nil {
		c.t.Fatalf("Commit: %v", err)
	}
	c.model.Commit()
	assertTablesEqual(c.t, c.model.tables[c.model.draftKind], table)
	c.draft = nil
}

func (c *CheckedBreaks) Cancel() {
	c.draft.Cancel()
	c.model.Cancel()
	if _, err := c.draft.Commit(context.Background()); !errors.Is(err, breaks.ErrDraftClosed) {
		c.t.Fatalf("Commit after Cancel: got %v, want ErrDraftClosed", err)
	}
	c.draft = nil
}

func (c *CheckedBreaks) ResetDraft() {
	if err := c.draft.Reset(context.Background()); err != nil {
		c.t.Fatalf("Draft.Reset: %v", err)
	}
	c.model.ResetDraft()
	assertTablesEqual(c.t, c.model.draft, c.draft.Rows())
}

func (c *CheckedBreaks) Reset(kind pricing.TableKind) {
	table, err := c.real.Reset(context.Background(), kind)
	if err != nil {
		c.t.Fatalf("Reset(%s): %v", kind, err)
	}
	c.model.Reset(kind)
	assertTablesEqual(c.t, c.model.tables[kind], table)
}

// Verify compares every persisted table with the model.
func (c *CheckedBreaks) Verify(real *breaks.Store) {
	for _, kind := range pricing.TableKinds {
		table, err := real.Load(context.Background(), kind)
		if err != nil {
			c.t.Fatalf("Load(%s): %v", kind, err)
		}
		assertTablesEqual(c.t, c.model.tables[kind], table)
	}
}
