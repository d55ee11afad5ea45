package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"threadco/internal/breaks"
	"threadco/internal/catalog"
	"threadco/internal/store"

	"go.uber.org/zap"
	"pgregory.net/rapid"
)

const (
	minRows        = 0
	maxRows        = 30
	typicalMinRows = 1
	typicalMaxRows = 12
	minTiers       = 0
	maxTiers       = 12
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenRows(minCount, maxCount int) []catalog.Row {
	return rowsGen(minCount, maxCount).Draw(h.T, "rows")
}

func (h *Harness) GenIndex(minCount, maxCount int) (*catalog.Index, []catalog.Row) {
	rows := h.GenRows(minCount, maxCount)
	return catalog.NewIndex(rows), rows
}

// BreaksHarness backs a break-table store with a YAML file in the
// iteration directory.
type BreaksHarness struct {
	Harness
	KV     *store.YAMLStore
	Breaks *breaks.Store
}

// Reopen returns a second store reading the same file.
func (h *BreaksHarness) Reopen() *breaks.Store {
	kv, err := store.NewYAMLStore(h.KV.Path())
	if err != nil {
		h.T.Fatalf("failed to reopen store: %v", err)
	}
	return breaks.NewStore(kv, zap.NewNop())
}

func RunWithBreaks(t *testing.T, fn func(h *BreaksHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := makeIterDir(rt, tempDir)

		kv, err := store.NewYAMLStore(filepath.Join(iterDir, "store.yaml"))
		if err != nil {
			rt.Fatalf("failed to create store: %v", err)
		}

		fn(&BreaksHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			KV:      kv,
			Breaks:  breaks.NewStore(kv, zap.NewNop()),
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: makeIterDir(rt, tempDir)})
	})
}

// makeIterDir returns a new, empty directory for each iteration.
func makeIterDir(rt *rapid.T, root string) string {
	iterDir, err := os.MkdirTemp(root, iterDirGen.Draw(rt, "iterDir"))
	if err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}
