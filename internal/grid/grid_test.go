package grid

import (
	"errors"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	g1, err := Generate(30, 20, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	g2, err := Generate(30, 20, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !g1.Equal(g2) {
		t.Error("two grids with the same seed should be identical")
	}

	g3, err := Generate(30, 20, 54321)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g1.Equal(g3) {
		t.Error("different seeds should produce different grids")
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(tc.w, tc.h, 1); err == nil {
				t.Errorf("Generate(%d, %d) should fail", tc.w, tc.h)
			}
		})
	}
}

func TestGenerateCoversEveryCell(t *testing.T) {
	g, err := Generate(8, 6, 7)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			tile, err := g.TileAt(C(x, y))
			if err != nil {
				t.Fatalf("TileAt(%d,%d) failed: %v", x, y, err)
			}
			if tile.Passable() && tile.Cost() < 1.0 {
				t.Errorf("passable tile at (%d,%d) has cost %.2f < 1.0", x, y, tile.Cost())
			}
			if !tile.Passable() && tile.Cost() != 0 {
				t.Errorf("impassable tile at (%d,%d) has nonzero cost", x, y)
			}
		}
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	g := NewUniform(5, 5, TerrainPlain)

	tests := []Coord{
		C(-1, 0),
		C(0, -1),
		C(5, 0),
		C(0, 5),
		C(100, 100),
	}

	for _, c := range tests {
		if _, err := g.TileAt(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%s) = %v, expected ErrOutOfBounds", c, err)
		}
	}

	if _, err := g.TileAt(C(4, 4)); err != nil {
		t.Errorf("TileAt(4,4) should succeed, got %v", err)
	}
}

func TestNeighborsOrder(t *testing.T) {
	g := NewUniform(5, 5, TerrainPlain)

	got := g.Neighbors(C(2, 2))
	want := []Coord{C(2, 1), C(3, 2), C(2, 3), C(1, 2)} // N, E, S, W

	if len(got) != len(want) {
		t.Fatalf("Neighbors() returned %d coords, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestNeighborsSkipImpassableAndOutOfBounds(t *testing.T) {
	g := NewUniform(3, 3, TerrainPlain)
	g.SetTerrain(C(1, 0), TerrainWater)

	got := g.Neighbors(C(0, 0))
	// North and West are out of bounds, East (1,0) is water.
	want := []Coord{C(0, 1)}

	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Neighbors(0,0) = %v, expected %v", got, want)
	}
}

func TestTerrainCosts(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		cost     float64
		passable bool
	}{
		{TerrainPlain, 1.0, true},
		{TerrainSand, 1.3, true},
		{TerrainForest, 1.5, true},
		{TerrainRock, 2.0, true},
		{TerrainWater, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.terrain.String(), func(t *testing.T) {
			if got := tc.terrain.Cost(); got != tc.cost {
				t.Errorf("Cost() = %.2f, expected %.2f", got, tc.cost)
			}
			if got := tc.terrain.Passable(); got != tc.passable {
				t.Errorf("Passable() = %v, expected %v", got, tc.passable)
			}
		})
	}
}

func TestFirstAndLastPassable(t *testing.T) {
	g := NewUniform(3, 3, TerrainWater)
	if _, ok := g.FirstPassable(); ok {
		t.Error("all-water grid should have no passable cell")
	}

	g.SetTerrain(C(1, 0), TerrainPlain)
	g.SetTerrain(C(2, 2), TerrainPlain)

	first, ok := g.FirstPassable()
	if !ok || first != C(1, 0) {
		t.Errorf("FirstPassable() = %v, %v; expected (1,0), true", first, ok)
	}
	last, ok := g.LastPassable()
	if !ok || last != C(2, 2) {
		t.Errorf("LastPassable() = %v, %v; expected (2,2), true", last, ok)
	}
}

func TestPassableCount(t *testing.T) {
	g := NewUniform(4, 4, TerrainPlain)
	if got := g.PassableCount(); got != 16 {
		t.Errorf("PassableCount() = %d, expected 16", got)
	}
	g.SetTerrain(C(0, 0), TerrainWater)
	g.SetTerrain(C(3, 3), TerrainWater)
	if got := g.PassableCount(); got != 14 {
		t.Errorf("PassableCount() = %d, expected 14", got)
	}
}
