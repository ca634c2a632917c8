package core

import "github.com/pkg/errors"

// Grid stores the per-cell neighbor-count accumulators for a fixed-size board
// in row-major order. Dimensions are immutable after construction. The
// counters are scratch space for a single generation computation and must be
// zero between computations.
type Grid struct {
	w, h      int
	neighbors []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, neighbors: make([]uint8, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// NeighborCount returns the accumulated neighbor count for the cell at
// (x, y). An out-of-bounds coordinate here is a caller bug, so it is reported
// rather than ignored.
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, errors.Errorf("cell lookup out of bounds: (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	return int(g.neighbors[g.Index(x, y)]), nil
}

// IncrementNeighbor bumps the accumulator for the cell at (x, y).
// Out-of-bounds coordinates are dropped silently: neighbor offsets routinely
// fall off the edge of the board and are never wrapped.
func (g *Grid) IncrementNeighbor(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.neighbors[g.Index(x, y)]++
}

// ResetNeighbor zeroes the accumulator for the cell at (x, y). Out-of-bounds
// coordinates are dropped like in IncrementNeighbor.
func (g *Grid) ResetNeighbor(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.neighbors[g.Index(x, y)] = 0
}

// Counters exposes the backing accumulator slice for inspection.
func (g *Grid) Counters() []uint8 { return g.neighbors }

// Clear zeroes every accumulator.
func (g *Grid) Clear() {
	for i := range g.neighbors {
		g.neighbors[i] = 0
	}
}
