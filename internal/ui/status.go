package ui

// Status is the snapshot of simulation state shown on the HUD.
type Status struct {
	Mode       string
	Generation int
	Population int
}
