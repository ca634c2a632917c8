package app

import (
	"math"

	"gridlife/internal/core"
)

const (
	// cameraMoveFactor is the fraction of a cell the view pans per held frame.
	cameraMoveFactor = 0.3
	// zoomInStep and zoomOutStep are the per-notch scroll zoom multipliers.
	zoomInStep  = 1.1
	zoomOutStep = 0.9
)

// Camera applies purely visual pan and zoom. It never changes grid
// coordinates or simulation state. OffsetX and OffsetY are the screen
// position of the grid origin (cell 0,0, topmost row).
type Camera struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64

	cell int
}

// NewCamera constructs a camera for a board with the given cell pixel size.
func NewCamera(cellSize int) *Camera {
	return &Camera{Zoom: 1, cell: cellSize}
}

// Pan moves the viewport by (dx, dy) steps of cameraMoveFactor cells. The
// grid origin shifts the opposite way on screen.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX -= dx * float64(c.cell) * cameraMoveFactor * c.Zoom
	c.OffsetY -= dy * float64(c.cell) * cameraMoveFactor * c.Zoom
}

// ZoomBy applies scroll notches: each notch in multiplies the scale by 1.1,
// each notch out by 0.9. Fractional deltas scale proportionally.
func (c *Camera) ZoomBy(notches float64) {
	switch {
	case notches > 0:
		c.Zoom *= math.Pow(zoomInStep, notches)
	case notches < 0:
		c.Zoom *= math.Pow(zoomOutStep, -notches)
	}
}

// ScreenToGrid maps a screen position to the grid cell it falls in, flooring
// to cell boundaries. ok is false when the position lies outside the board;
// negative coordinates never resolve to a cell.
func (c *Camera) ScreenToGrid(sx, sy float64, size core.Size) (core.Point, bool) {
	span := float64(c.cell) * c.Zoom
	gx := math.Floor((sx - c.OffsetX) / span)
	gy := math.Floor((sy - c.OffsetY) / span)
	if gx < 0 || gy < 0 || gx >= float64(size.W) || gy >= float64(size.H) {
		return core.Point{}, false
	}
	return core.Point{X: int(gx), Y: int(gy)}, true
}
