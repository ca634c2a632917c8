package core

import "testing"

func TestNewGridRejectsBadDimensions(t *testing.T) {
	if _, err := NewGrid(0, 10); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewGrid(10, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestNeighborCountOutOfBoundsErrors(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.NeighborCount(4, 0); err == nil {
		t.Fatal("expected error for x past the right edge")
	}
	if _, err := g.NeighborCount(0, -1); err == nil {
		t.Fatal("expected error for negative y")
	}
	if _, err := g.NeighborCount(3, 3); err != nil {
		t.Fatalf("in-bounds lookup failed: %v", err)
	}
}

func TestCornerIncrementsDropOutOfBoundsOffsets(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	// All eight neighbor offsets around the corner cell (0,0); five of them
	// fall off the board and must be dropped without wrapping.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g.IncrementNeighbor(dx, dy)
		}
	}

	want := map[[2]int]int{{1, 0}: 1, {0, 1}: 1, {1, 1}: 1}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			count, err := g.NeighborCount(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if count != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) count=%d, expected %d", x, y, count, want[[2]int{x, y}])
			}
		}
	}
}

func TestResetNeighbor(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.IncrementNeighbor(1, 1)
	g.IncrementNeighbor(1, 1)
	g.ResetNeighbor(1, 1)
	g.ResetNeighbor(-1, 7) // out of bounds, must be a no-op

	count, err := g.NeighborCount(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("count after reset = %d, expected 0", count)
	}
}

func TestClearZeroesEveryCounter(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			g.IncrementNeighbor(x, y)
		}
	}
	g.Clear()
	for i, c := range g.Counters() {
		if c != 0 {
			t.Fatalf("counter %d = %d after Clear, expected 0", i, c)
		}
	}
}
