package render

import (
	"fmt"

	"gridlife/internal/core"
	"gridlife/internal/sim"
	rng "gridlife/pkg/core"
)

// Board owns the alive state of every cell: the engine queries it for the
// current live set and the painter blits it to the screen. The two views are
// the same buffer, so they can never disagree.
type Board struct {
	w, h  int
	cells []uint8
}

// NewBoard allocates an all-dead board of the given size.
func NewBoard(size core.Size) *Board {
	return &Board{w: size.W, h: size.H, cells: make([]uint8, size.W*size.H)}
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the backing buffer for the painter. 0 is dead, 1 is alive.
func (b *Board) Cells() []uint8 { return b.cells }

// Alive reports whether the cell at (x, y) is alive. Out-of-bounds
// coordinates read as dead.
func (b *Board) Alive(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.cells[y*b.w+x] != 0
}

// EachAlive calls fn for every live cell.
func (b *Board) EachAlive(fn func(p core.Point)) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cells[y*b.w+x] != 0 {
				fn(core.Point{X: x, Y: y})
			}
		}
	}
}

// SetAlive marks a cell alive immediately, bypassing the generation
// pipeline. Out-of-bounds coordinates are ignored so that placement input
// landing off the board is a no-op.
func (b *Board) SetAlive(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = 1
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Apply flips the board state for exactly the cells listed in the result:
// dead for every entry of Died, alive for every entry of Born. A coordinate
// outside the board means the engine and the board have desynchronized,
// which is unrecoverable.
func (b *Board) Apply(res sim.Result) {
	for _, p := range res.Died {
		b.set(p, 0)
	}
	for _, p := range res.Born {
		b.set(p, 1)
	}
}

func (b *Board) set(p core.Point, v uint8) {
	if p.X < 0 || p.X >= b.w || p.Y < 0 || p.Y >= b.h {
		panic(fmt.Sprintf("render: apply to unknown cell (%d,%d) on %dx%d board", p.X, p.Y, b.w, b.h))
	}
	b.cells[p.Y*b.w+p.X] = v
}

// Randomize kills the board and revives cells independently with the given
// probability.
func (b *Board) Randomize(r *rng.RNG, density float64) {
	for i := range b.cells {
		b.cells[i] = 0
		if r.Chance(density) {
			b.cells[i] = 1
		}
	}
}

// StampGlider places a glider with its bounding box anchored at p. Cells
// falling off the board are dropped.
func (b *Board) StampGlider(p core.Point) {
	pattern := []core.Point{
		{X: 1, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	for _, q := range pattern {
		b.SetAlive(p.X+q.X, p.Y+q.Y)
	}
}

// StampBlinker places a horizontal three-cell blinker starting at p.
func (b *Board) StampBlinker(p core.Point) {
	b.SetAlive(p.X, p.Y)
	b.SetAlive(p.X+1, p.Y)
	b.SetAlive(p.X+2, p.Y)
}
