package grid

import "testing"

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected int
	}{
		{"same cell", C(3, 4), C(3, 4), 0},
		{"horizontal", C(0, 0), C(5, 0), 5},
		{"vertical", C(0, 0), C(0, 7), 7},
		{"diagonal", C(1, 2), C(4, 6), 7},
		{"negative direction", C(4, 6), C(1, 2), 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.expected {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestDirDelta(t *testing.T) {
	tests := []struct {
		dir    Dir
		dx, dy int
	}{
		{DirNorth, 0, -1},
		{DirEast, 1, 0},
		{DirSouth, 0, 1},
		{DirWest, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d,%d), expected (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestStep(t *testing.T) {
	c := C(5, 5)
	if got := c.Step(DirNorth); got != C(5, 4) {
		t.Errorf("Step(North) = %s, expected (5,4)", got)
	}
	if got := c.Step(DirEast); got != C(6, 5) {
		t.Errorf("Step(East) = %s, expected (6,5)", got)
	}
}

func TestAdjacent(t *testing.T) {
	c := C(2, 2)
	for _, d := range AllDirs() {
		if !c.Adjacent(c.Step(d)) {
			t.Errorf("expected %s adjacent to %s", c.Step(d), c)
		}
	}
	if c.Adjacent(c) {
		t.Error("a cell should not be adjacent to itself")
	}
	if c.Adjacent(C(3, 3)) {
		t.Error("diagonal cells should not be adjacent")
	}
}
