package levels

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/game"
)

var builtinIDs = []string{"classic", "rapids", "gauntlet"}

func TestBuiltinPacksRegistered(t *testing.T) {
	want := map[string]int{"classic": 6, "rapids": 3, "gauntlet": 3}

	for id, count := range want {
		p, ok := Get(id)
		if !ok {
			t.Errorf("Pack %q not registered", id)
			continue
		}
		if len(p.Levels) != count {
			t.Errorf("Pack %q should have %d levels, got %d", id, count, len(p.Levels))
		}
		if p.Title == "" {
			t.Errorf("Pack %q has no title", id)
		}
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("Expected at least the built-in packs, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("Packs not sorted: %s >= %s", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestAllBuiltinLevelsValid(t *testing.T) {
	for _, id := range builtinIDs {
		p, ok := Get(id)
		if !ok {
			t.Fatalf("Pack %q not registered", id)
		}
		if err := Validate(p); err != nil {
			t.Errorf("Pack %q failed validation: %v", id, err)
		}

		for i, lvl := range p.Levels {
			if lvl.Name == "" {
				t.Errorf("%s level %d has no name", id, i)
			}
			if len(lvl.Roads) == 0 {
				t.Errorf("%s level %d has no roads", id, i)
			}
			for _, row := range lvl.Roads {
				if row <= 0 || row >= lvl.Height-1 {
					t.Errorf("%s level %d: road row %d should be strictly inside the grid", id, i, row)
				}
			}
		}
	}
}

func TestBuiltinPacksPlayable(t *testing.T) {
	for _, id := range builtinIDs {
		p, ok := Get(id)
		if !ok {
			t.Fatalf("Pack %q not registered", id)
		}

		g := game.New(p.Levels, game.DefaultRules(), core.RuntimeConfig{Seed: 42})
		g.HandleInput(core.ActionConfirm)

		if g.Board() == nil {
			t.Fatalf("Pack %q did not install a board", id)
		}
		if len(g.Enemies()) != len(g.Board().Roads()) {
			t.Errorf("Pack %q: expected one enemy per road", id)
		}

		// An idle player on the bottom grass row survives indefinitely.
		for i := 0; i < 30; i++ {
			g.Step(1.0 / 30)
		}
		st := g.State()
		if st.GameOver || st.Completed {
			t.Errorf("Pack %q should still be running after one idle second: %+v", id, st)
		}
		if st.Lives != 3 {
			t.Errorf("Pack %q: idle player should not lose lives, got %d", id, st.Lives)
		}
	}
}
