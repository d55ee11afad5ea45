package proptest

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_StateMachine_BreakEditing(t *testing.T) {
	RunWithBreaks(t, func(h *BreaksHarness) {
		checked := NewCheckedBreaks(h.T, h.Breaks)

		h.T.Repeat(map[string]func(*rapid.T){
			"open": func(rt *rapid.T) {
				if checked.Model().open {
					rt.Skip("draft already open")
				}
				checked.Open(kindGen.Draw(rt, "kind"))
			},

			"setMinQty": func(rt *rapid.T) {
				if !checked.Model().open {
					rt.Skip("no draft")
				}
				id := rapid.IntRange(0, 12).Draw(rt, "id")
				checked.SetMinQty(id, rapid.Float64Range(-10, 500).Draw(rt, "minQty"))
			},

			"setDeduct": func(rt *rapid.T) {
				if !checked.Model().open {
					rt.Skip("no draft")
				}
				id := rapid.IntRange(0, 12).Draw(rt, "id")
				checked.SetDeduct(id, rapid.Float64Range(-5, 10).Draw(rt, "deduct"))
			},

			"commit": func(rt *rapid.T) {
				if !checked.Model().open {
					rt.Skip("no draft")
				}
				checked.Commit()
			},

			"cancel": func(rt *rapid.T) {
				if !checked.Model().open {
					rt.Skip("no draft")
				}
				checked.Cancel()
			},

			"resetDraft": func(rt *rapid.T) {
				if !checked.Model().open {
					rt.Skip("no draft")
				}
				checked.ResetDraft()
			},

			"reset": func(rt *rapid.T) {
				if checked.Model().open {
					rt.Skip("draft open")
				}
				checked.Reset(kindGen.Draw(rt, "kind"))
			},

			"": func(rt *rapid.T) {
				checked.Verify(h.Reopen())
			},
		})
	})
}
