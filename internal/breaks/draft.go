package breaks

import (
	"context"
	"errors"
	"fmt"

	"threadco/internal/pricing"
)

var (
	ErrUnknownRow  = errors.New("no price break with that id")
	ErrDraftClosed = errors.New("draft already committed or cancelled")
)

// Draft is a staging copy of one table. Edits stay local until Commit;
// Cancel drops them.
type Draft struct {
	store  *Store
	kind   pricing.TableKind
	rows   pricing.PriceBreakTable
	closed bool
}

// Edit opens a draft seeded from the persisted table.
func (s *Store) Edit(ctx context.Context, kind pricing.TableKind) (*Draft, error) {
	table, err := s.Load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &Draft{store: s, kind: kind, rows: table.Clone()}, nil
}

func (d *Draft) Kind() pricing.TableKind {
	return d.kind
}

func (d *Draft) Rows() pricing.PriceBreakTable {
	return d.rows.Clone()
}

// SetMinQty stores v clamped to >= 0; non-finite values become 0.
func (d *Draft) SetMinQty(id int, v float64) error {
	return d.update(id, func(r *pricing.PriceBreakRow) {
		r.MinQty = pricing.ClampFloat(v, 0, 0)
	})
}

// SetDeduct stores v clamped to >= 0; non-finite values become 0.
func (d *Draft) SetDeduct(id int, v float64) error {
	return d.update(id, func(r *pricing.PriceBreakRow) {
		r.Deduct = pricing.ClampFloat(v, 0, 0)
	})
}

func (d *Draft) update(id int, fn func(*pricing.PriceBreakRow)) error {
	if d.closed {
		return ErrDraftClosed
	}
	for i := range d.rows {
		if d.rows[i].ID == id {
			fn(&d.rows[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownRow, id)
}

// Commit sorts the staged rows by threshold and saves them.
func (d *Draft) Commit(ctx context.Context) (pricing.PriceBreakTable, error) {
	if d.closed {
		return nil, ErrDraftClosed
	}
	sorted := d.rows.Sorted()
	if err := d.store.Save(ctx, d.kind, sorted); err != nil {
		return nil, err
	}
	d.closed = true
	return sorted, nil
}

func (d *Draft) Cancel() {
	d.closed = true
	d.rows = nil
}

// Reset restores the persisted defaults immediately and restarts the
// staging copy from them.
func (d *Draft) Reset(ctx context.Context) error {
	if d.closed {
		return ErrDraftClosed
	}
	table, err := d.store.Reset(ctx, d.kind)
	if err != nil {
		return err
	}
	d.rows = table.Clone()
	return nil
}
