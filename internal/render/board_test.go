package render

import (
	"bytes"
	"testing"

	"gridlife/internal/core"
	"gridlife/internal/sim"
	rng "gridlife/pkg/core"
)

func TestSetAliveIgnoresOutOfBounds(t *testing.T) {
	b := NewBoard(core.Size{W: 4, H: 4})
	b.SetAlive(-1, 0)
	b.SetAlive(0, -1)
	b.SetAlive(4, 0)
	b.SetAlive(0, 4)
	if b.Population() != 0 {
		t.Fatalf("population = %d after out-of-bounds sets, expected 0", b.Population())
	}

	b.SetAlive(2, 3)
	if !b.Alive(2, 3) || b.Population() != 1 {
		t.Fatal("in-bounds SetAlive did not mark the cell")
	}
}

func TestAliveReadsOutOfBoundsAsDead(t *testing.T) {
	b := NewBoard(core.Size{W: 3, H: 3})
	b.SetAlive(0, 0)
	if b.Alive(-1, -1) || b.Alive(3, 0) || b.Alive(0, 3) {
		t.Fatal("out-of-bounds reads must be dead")
	}
}

func TestApplyFlipsExactlyListedCells(t *testing.T) {
	b := NewBoard(core.Size{W: 5, H: 5})
	b.SetAlive(1, 1)
	b.SetAlive(2, 2)

	b.Apply(sim.Result{
		Died: []core.Point{{X: 1, Y: 1}},
		Born: []core.Point{{X: 3, Y: 3}, {X: 2, Y: 2}},
	})

	if b.Alive(1, 1) {
		t.Fatal("died cell still alive")
	}
	if !b.Alive(3, 3) {
		t.Fatal("born cell not alive")
	}
	if !b.Alive(2, 2) {
		t.Fatal("re-asserting alive on a live cell must keep it alive")
	}
	if b.Population() != 2 {
		t.Fatalf("population = %d, expected 2", b.Population())
	}
}

func TestApplyUnknownCellPanics(t *testing.T) {
	b := NewBoard(core.Size{W: 4, H: 4})
	defer func() {
		if recover() == nil {
			t.Fatal("applying to a cell outside the board must panic")
		}
	}()
	b.Apply(sim.Result{Born: []core.Point{{X: 9, Y: 9}}})
}

func TestEachAliveVisitsEveryLiveCell(t *testing.T) {
	b := NewBoard(core.Size{W: 4, H: 4})
	b.SetAlive(0, 0)
	b.SetAlive(3, 2)

	seen := make(map[core.Point]bool)
	b.EachAlive(func(p core.Point) { seen[p] = true })
	if len(seen) != 2 || !seen[core.Point{X: 0, Y: 0}] || !seen[core.Point{X: 3, Y: 2}] {
		t.Fatalf("EachAlive visited %v", seen)
	}
}

func TestClear(t *testing.T) {
	b := NewBoard(core.Size{W: 4, H: 4})
	b.SetAlive(1, 1)
	b.SetAlive(2, 2)
	b.Clear()
	if b.Population() != 0 {
		t.Fatalf("population = %d after Clear, expected 0", b.Population())
	}
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	first := NewBoard(core.Size{W: 16, H: 16})
	second := NewBoard(core.Size{W: 16, H: 16})
	first.Randomize(rng.NewRNG(7), 0.4)
	second.Randomize(rng.NewRNG(7), 0.4)

	if !bytes.Equal(first.Cells(), second.Cells()) {
		t.Fatal("same seed and density must fill identically")
	}

	first.Randomize(rng.NewRNG(7), 0)
	if first.Population() != 0 {
		t.Fatal("density 0 must leave every cell dead")
	}
	first.Randomize(rng.NewRNG(7), 1)
	if first.Population() != 16*16 {
		t.Fatal("density 1 must revive every cell")
	}
}

func TestStampGlider(t *testing.T) {
	b := NewBoard(core.Size{W: 10, H: 10})
	b.StampGlider(core.Point{X: 2, Y: 2})

	want := []core.Point{
		{X: 3, Y: 2},
		{X: 4, Y: 3},
		{X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4},
	}
	if b.Population() != len(want) {
		t.Fatalf("population = %d, expected %d", b.Population(), len(want))
	}
	for _, p := range want {
		if !b.Alive(p.X, p.Y) {
			t.Fatalf("glider cell (%d,%d) not alive", p.X, p.Y)
		}
	}
}

func TestStampsClipAtEdges(t *testing.T) {
	b := NewBoard(core.Size{W: 5, H: 5})
	b.StampGlider(core.Point{X: 4, Y: 4})
	b.StampBlinker(core.Point{X: 3, Y: 0})
	// Only the parts on the board survive; no panic, no wrap.
	if b.Alive(0, 4) || b.Alive(0, 0) {
		t.Fatal("clipped stamp cells wrapped around the board")
	}
}

func TestStampBlinker(t *testing.T) {
	b := NewBoard(core.Size{W: 8, H: 8})
	b.StampBlinker(core.Point{X: 2, Y: 3})
	for x := 2; x <= 4; x++ {
		if !b.Alive(x, 3) {
			t.Fatalf("blinker cell (%d,3) not alive", x)
		}
	}
	if b.Population() != 3 {
		t.Fatalf("population = %d, expected 3", b.Population())
	}
}
