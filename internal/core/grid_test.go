package core

import (
	"errors"
	"slices"
	"testing"
)

func newTestGrid(t *testing.T, rows, cols int, live ...Cell) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	for _, c := range live {
		if err := g.SetAlive(c.Row, c.Col, true); err != nil {
			t.Fatalf("SetAlive(%d, %d): %v", c.Row, c.Col, err)
		}
	}
	return g
}

func liveCells(g *Grid) []Cell {
	return g.Snapshot().Live()
}

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrDimensions) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrDimensions", dims[0], dims[1], err)
		}
	}
}

func TestAccessorsRejectOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
		if _, err := g.Alive(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Alive(%d,%d) err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.SetAlive(c.Row, c.Col, true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetAlive(%d,%d) err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.Toggle(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if _, err := g.NeighborCount(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("NeighborCount(%d,%d) err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("rejected writes changed the grid: population %d", g.Population())
	}
}

func TestNeighborCountIsBounded(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	cases := []struct {
		cell Cell
		want int
	}{
		{Cell{0, 0}, 3},
		{Cell{0, 3}, 3},
		{Cell{3, 0}, 3},
		{Cell{3, 3}, 3},
		{Cell{0, 1}, 5},
		{Cell{2, 3}, 5},
		{Cell{1, 1}, 8},
	}
	for _, tc := range cases {
		got, err := g.NeighborCount(tc.cell.Row, tc.cell.Col)
		if err != nil {
			t.Fatalf("NeighborCount(%v): %v", tc.cell, err)
		}
		if got != tc.want {
			t.Fatalf("NeighborCount(%v) = %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	seed := []Cell{{5, 4}, {5, 5}, {5, 6}}
	g := newTestGrid(t, 80, 100, seed...)

	g.Step()
	if got, want := liveCells(g), []Cell{{4, 5}, {5, 5}, {6, 5}}; !slices.Equal(got, want) {
		t.Fatalf("after one step live = %v, want %v", got, want)
	}

	g.Step()
	if got := liveCells(g); !slices.Equal(got, seed) {
		t.Fatalf("after two steps live = %v, want %v", got, seed)
	}
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestBlockIsStable(t *testing.T) {
	seed := []Cell{{10, 10}, {10, 11}, {11, 10}, {11, 11}}
	g := newTestGrid(t, 80, 100, seed...)
	for i := 1; i <= 7; i++ {
		g.Step()
		if got := liveCells(g); !slices.Equal(got, seed) {
			t.Fatalf("step %d: live = %v, want %v", i, got, seed)
		}
		if g.Generation() != i {
			t.Fatalf("step %d: generation = %d", i, g.Generation())
		}
	}
}

func TestEdgeTriominoDecays(t *testing.T) {
	g := newTestGrid(t, 80, 100, Cell{0, 0}, Cell{0, 1}, Cell{0, 2})

	// (0,1) keeps its two row neighbors, (1,1) is born from three. A wrapping
	// board would also give birth to (79,1).
	g.Step()
	if got, want := liveCells(g), []Cell{{0, 1}, {1, 1}}; !slices.Equal(got, want) {
		t.Fatalf("live = %v, want %v", got, want)
	}
	if alive, _ := g.Alive(79, 1); alive {
		t.Fatal("bottom row must not see the top edge")
	}

	g.Step()
	if g.Population() != 0 {
		t.Fatalf("domino should die out, population %d", g.Population())
	}
}

func TestSingleRowAndColumnGrids(t *testing.T) {
	row := newTestGrid(t, 1, 5, Cell{0, 1}, Cell{0, 2}, Cell{0, 3})
	row.Step()
	if got, want := liveCells(row), []Cell{{0, 2}}; !slices.Equal(got, want) {
		t.Fatalf("1x5 live = %v, want %v", got, want)
	}
	row.Step()
	if row.Population() != 0 {
		t.Fatalf("1x5 population = %d, want 0", row.Population())
	}

	single := newTestGrid(t, 1, 1, Cell{0, 0})
	if n, _ := single.NeighborCount(0, 0); n != 0 {
		t.Fatalf("1x1 neighbor count = %d, want 0", n)
	}
	single.Step()
	if single.Population() != 0 {
		t.Fatal("lone cell must die")
	}

	col := newTestGrid(t, 4, 1, Cell{1, 0}, Cell{2, 0})
	col.Step()
	if col.Population() != 0 {
		t.Fatalf("4x1 population = %d, want 0", col.Population())
	}
}

// referenceStep evaluates the rule from an immutable snapshot, visiting cells
// in reverse order.
func referenceStep(s Snapshot) []Cell {
	size := s.Size()
	var out []Cell
	for row := size.Rows - 1; row >= 0; row-- {
		for col := size.Cols - 1; col >= 0; col-- {
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if (dr != 0 || dc != 0) && s.Alive(row+dr, col+dc) {
						n++
					}
				}
			}
			alive := s.Alive(row, col)
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				out = append(out, Cell{Row: row, Col: col})
			}
		}
	}
	slices.Reverse(out)
	return out
}

func TestStepMatchesOrderIndependentReference(t *testing.T) {
	g := newTestGrid(t, 24, 31)
	g.Randomize(NewRNG(7), 0.35)
	for i := 0; i < 12; i++ {
		want := referenceStep(g.Snapshot())
		g.Step()
		if got := liveCells(g); !slices.Equal(got, want) {
			t.Fatalf("step %d diverged from reference", i+1)
		}
	}
}

func TestClearAndLoadResetGeneration(t *testing.T) {
	g := newTestGrid(t, 8, 8, Cell{2, 2}, Cell{2, 3}, Cell{3, 2}, Cell{3, 3})
	seed := g.Snapshot()
	g.Step()
	g.Step()

	if err := g.LoadFrom(seed); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if g.Generation() != 0 {
		t.Fatalf("generation after load = %d", g.Generation())
	}
	if got := liveCells(g); !slices.Equal(got, seed.Live()) {
		t.Fatalf("live after load = %v, want %v", got, seed.Live())
	}

	g.Step()
	g.Clear()
	if g.Generation() != 0 || g.Population() != 0 {
		t.Fatalf("after Clear generation=%d population=%d", g.Generation(), g.Population())
	}
}

func TestSnapshotIsImmutableCopy(t *testing.T) {
	g := newTestGrid(t, 5, 5, Cell{1, 1})
	snap := g.Snapshot()
	if err := g.SetAlive(1, 1, false); err != nil {
		t.Fatal(err)
	}
	if err := g.SetAlive(4, 4, true); err != nil {
		t.Fatal(err)
	}
	if !snap.Alive(1, 1) || snap.Alive(4, 4) {
		t.Fatal("snapshot observed later grid mutation")
	}

	empty := newTestGrid(t, 5, 5)
	if err := empty.LoadFrom(snap); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(empty.Cells(), []uint8(snap.cells)) {
		t.Fatal("snapshot/load round trip changed cells")
	}
}

func TestLoadFromRejectsMismatchedSnapshot(t *testing.T) {
	small := newTestGrid(t, 2, 2, Cell{0, 0})
	big := newTestGrid(t, 3, 3, Cell{1, 1})
	big.Step()
	if err := big.LoadFrom(small.Snapshot()); !errors.Is(err, ErrDimensions) {
		t.Fatalf("err = %v, want ErrDimensions", err)
	}
	if big.Generation() != 1 {
		t.Fatal("rejected load changed the generation")
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := newTestGrid(t, 16, 16)
	b := newTestGrid(t, 16, 16)
	a.Randomize(NewRNG(42), 0.5)
	b.Randomize(NewRNG(42), 0.5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different soups")
	}
	if a.Population() == 0 || a.Population() == 16*16 {
		t.Fatalf("unexpected population %d for density 0.5", a.Population())
	}

	a.Randomize(NewRNG(1), 0)
	if a.Population() != 0 {
		t.Fatal("density 0 must produce an empty grid")
	}
	a.Randomize(NewRNG(1), 2)
	if a.Population() != 16*16 {
		t.Fatal("density above 1 must fill the grid")
	}
}

func TestStore(t *testing.T) {
	var s Store
	if _, ok := s.Load(); ok {
		t.Fatal("empty store reported a snapshot")
	}
	g := newTestGrid(t, 3, 3, Cell{0, 0})
	s.Commit(g.Snapshot())
	_ = g.SetAlive(2, 2, true)
	s.Commit(g.Snapshot())
	snap, ok := s.Load()
	if !ok {
		t.Fatal("store lost the commit")
	}
	if got, want := snap.Live(), []Cell{{0, 0}, {2, 2}}; !slices.Equal(got, want) {
		t.Fatalf("live = %v, want %v", got, want)
	}
}
