package core

// Point identifies a single grid cell by its column and row. Row 0 is the
// topmost row.
type Point struct {
	X int
	Y int
}

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}
