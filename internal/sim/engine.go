package sim

import (
	"gridlife/internal/core"
)

// AliveView is the engine's read-only view of which cells are currently
// alive. The render layer owns the flags; the engine only queries them.
type AliveView interface {
	Alive(x, y int) bool
	EachAlive(fn func(p core.Point))
}

// Result lists the cells whose alive state changes in one generation. Order
// carries no meaning; a cell in neither list is unchanged. An already-alive
// cell with exactly three neighbors appears in Born, which applies as an
// idempotent re-assert.
type Result struct {
	Died []core.Point
	Born []core.Point
}

// Engine computes Game of Life generations incrementally: only live cells and
// their neighbors are visited, using the grid's neighbor-count accumulators
// as scratch space. Every accumulator is zero again before a call returns.
type Engine struct {
	grid *core.Grid
}

// NewEngine constructs an engine over the given grid store.
func NewEngine(grid *core.Grid) *Engine { return &Engine{grid: grid} }

// NextGeneration applies the birth/survival rule to the current live set and
// returns the cells that change. The result depends only on the set of live
// coordinates at call time.
func (e *Engine) NextGeneration(view AliveView) Result {
	size := e.grid.Size()
	candidates := make(map[core.Point]struct{})

	view.EachAlive(func(p core.Point) {
		candidates[p] = struct{}{}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if x < 0 || y < 0 || x >= size.W || y >= size.H {
					continue
				}
				candidates[core.Point{X: x, Y: y}] = struct{}{}
				e.grid.IncrementNeighbor(x, y)
			}
		}
	})

	var res Result
	for p := range candidates {
		count, err := e.grid.NeighborCount(p.X, p.Y)
		if err != nil {
			// Candidates are built from in-bounds coordinates only.
			panic(err)
		}
		alive := view.Alive(p.X, p.Y)
		switch {
		case alive && count != 2 && count != 3:
			res.Died = append(res.Died, p)
		case count == 3:
			res.Born = append(res.Born, p)
		}
		e.grid.ResetNeighbor(p.X, p.Y)
	}
	return res
}
