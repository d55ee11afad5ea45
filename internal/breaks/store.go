// Package breaks persists the three manual-mode price break tables.
package breaks

import (
	"context"
	"encoding/json"
	"fmt"

	"threadco/internal/pricing"
	"threadco/internal/store"

	"go.uber.org/zap"
)

// Storage keys. Existing saved tables live under these exact names.
const (
	QuantityKey   = "threadco_price_breaks_v1"
	FrontColorKey = "threadco_price_breaks_front_color_v1"
	BackColorKey  = "threadco_price_breaks_back_color_v1"
)

func Key(kind pricing.TableKind) string {
	switch kind {
	case pricing.FrontColorBreaks:
		return FrontColorKey
	case pricing.BackColorBreaks:
		return BackColorKey
	default:
		return QuantityKey
	}
}

type Store struct {
	kv  store.Store
	log *zap.Logger
}

func NewStore(kv store.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Load returns the saved table for kind. Missing, empty or malformed data
// yields the default table without an error. A backend failure is returned
// alongside the default table.
func (s *Store) Load(ctx context.Context, kind pricing.TableKind) (pricing.PriceBreakTable, error) {
	key := Key(kind)
	log := s.log.With(zap.String("table", string(kind)), zap.String("key", key))

	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Warn("failed to read price breaks", zap.Error(err))
		return pricing.DefaultTable(kind), fmt.Errorf("failed to load %s: %w", kind.Title(), err)
	}
	if !ok || raw == "" {
		return pricing.DefaultTable(kind), nil
	}

	table, err := decode(raw)
	if err != nil {
		log.Debug("ignoring malformed price breaks", zap.Error(err))
		return pricing.DefaultTable(kind), nil
	}
	return table, nil
}

func decode(raw string) (pricing.PriceBreakTable, error) {
	var table pricing.PriceBreakTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("price breaks must be a list")
	}
	return table, nil
}

// LoadAll loads every table. Tables whose load failed hold their defaults.
func (s *Store) LoadAll(ctx context.Context) (pricing.BreakTables, error) {
	var (
		tables   pricing.BreakTables
		firstErr error
	)
	for _, kind := range pricing.TableKinds {
		table, err := s.Load(ctx, kind)
		tables = tables.WithTable(kind, table)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return tables, firstErr
}

func (s *Store) Save(ctx context.Context, kind pricing.TableKind, table pricing.PriceBreakTable) error {
	if table == nil {
		table = pricing.PriceBreakTable{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, Key(kind), string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind.Title(), err)
	}
	s.log.Debug("saved price breaks", zap.String("table", string(kind)), zap.Int("rows", len(table)))
	return nil
}

// Reset persists and returns the default table for kind.
func (s *Store) Reset(ctx context.Context, kind pricing.TableKind) (pricing.PriceBreakTable, error) {
	table := pricing.DefaultTable(kind)
	if err := s.Save(ctx, kind, table); err != nil {
		return nil, err
	}
	return table, nil
}
