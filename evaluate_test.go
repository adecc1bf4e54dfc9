package hashlife_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"

	"github.com/agausmann/hashlife"
	"github.com/agausmann/hashlife/internal/grid"
)

func mustParse(t *testing.T, text string) *grid.Buffer {
	t.Helper()
	buf, err := grid.Parse(text)
	if err != nil {
		t.Fatalf("parsing pattern: %v", err)
	}
	return buf
}

func assertResult(t *testing.T, worldText, expectedText string) {
	t.Helper()
	cache := hashlife.NewCache()

	world := hashlife.FromSquare(mustParse(t, worldText).View(), cache)
	result, ok := hashlife.Result(world)
	if !ok {
		t.Fatalf("world of side %d produced no result", world.Side())
	}

	expected := hashlife.FromSquare(mustParse(t, expectedText).View(), cache)

	if result != expected {
		t.Fatalf("result mismatch:\ngot:  %s\nwant: %s", spew.Sdump(result), spew.Sdump(expected))
	}
}

func TestBlockStillLife(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"........\n"+
			"........\n"+
			"........\n"+
			"...OO...\n"+
			"...OO...\n"+
			"........\n"+
			"........\n"+
			"........\n",
		"....\n"+
			".OO.\n"+
			".OO.\n"+
			"....\n",
	)
}

func TestBeehiveStillLife(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"........\n"+
			"........\n"+
			"...OO...\n"+
			"..O..O..\n"+
			"...OO...\n"+
			"........\n"+
			"........\n"+
			"........\n",
		".OO.\n"+
			"O..O\n"+
			".OO.\n"+
			"....\n",
	)
}

func TestLoafStillLife(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"........\n"+
			"........\n"+
			"...OO...\n"+
			"..O..O..\n"+
			"...O.O..\n"+
			"....O...\n"+
			"........\n"+
			"........\n",
		".OO.\n"+
			"O..O\n"+
			".O.O\n"+
			"..O.\n",
	)
}

func TestPondStillLife(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"........\n"+
			"........\n"+
			"...OO...\n"+
			"..O..O..\n"+
			"..O..O..\n"+
			"...OO...\n"+
			"........\n"+
			"........\n",
		".OO.\n"+
			"O..O\n"+
			"O..O\n"+
			".OO.\n",
	)
}

func TestShipTieStillLife(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"................\n"+
			"................\n"+
			"................\n"+
			"................\n"+
			"................\n"+
			".........OO.....\n"+
			"........O.O.....\n"+
			"........OO......\n"+
			"......OO........\n"+
			".....O.O........\n"+
			".....OO.........\n"+
			"................\n"+
			"................\n"+
			"................\n"+
			"................\n"+
			"................\n",
		"........\n"+
			".....OO.\n"+
			"....O.O.\n"+
			"....OO..\n"+
			"..OO....\n"+
			".O.O....\n"+
			".OO.....\n"+
			"........\n",
	)
}

func TestAllDeadEvolvesToAllDead(t *testing.T) {
	t.Parallel()
	assertResult(t,
		"....\n....\n....\n....\n",
		"..\n..\n",
	)
}

func TestResultIsNoneForLeaf(t *testing.T) {
	t.Parallel()
	cache := hashlife.NewCache()
	leaf := hashlife.FromSquare(mustParse(t, "..\nO.\n").View(), cache)
	if _, ok := hashlife.Result(leaf); ok {
		t.Fatalf("expected no result for a Leaf")
	}
}

func TestResultHalvesSideAndIsIdempotent(t *testing.T) {
	t.Parallel()
	cache := hashlife.NewCache()
	world := hashlife.FromSquare(mustParse(t,
		"........\n"+
			"........\n"+
			"........\n"+
			"...OO...\n"+
			"...OO...\n"+
			"........\n"+
			"........\n"+
			"........\n").View(), cache)

	result1, ok := hashlife.Result(world)
	if !ok {
		t.Fatalf("expected a result")
	}
	if result1.Side() != world.Side()/2 {
		t.Fatalf("result side = %d, want %d", result1.Side(), world.Side()/2)
	}

	before := cache.Len()
	result2, ok := hashlife.Result(world)
	if !ok {
		t.Fatalf("expected a result")
	}
	if result1 != result2 {
		t.Fatalf("result is not idempotent: %v != %v", result1, result2)
	}
	if cache.Len() != before {
		t.Fatalf("second Result call grew the cache: %d -> %d", before, cache.Len())
	}
}

// naiveGenerations advances a rows x cols boolean grid by n generations
// of B3/S23 Life with dead (false) boundary conditions, the reference
// implementation spec 8's round-trip property is checked against.
func naiveGenerations(state []bool, rows, cols, n int) []bool {
	at := func(s []bool, r, c int) bool {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return false
		}
		return s[r*cols+c]
	}
	cur := append([]bool(nil), state...)
	for step := 0; step < n; step++ {
		next := make([]bool, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				count := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						if at(cur, r+dr, c+dc) {
							count++
						}
					}
				}
				self := at(cur, r, c)
				next[r*cols+c] = (!self && count == 3) || (self && (count == 2 || count == 3))
			}
		}
		cur = next
	}
	return cur
}

// expectedCenter extracts the centered side/2 x side/2 square from a
// side x side grid.
func expectedCenter(state []bool, side int) []bool {
	half := side / 2
	quarter := half / 2
	out := make([]bool, half*half)
	for r := 0; r < half; r++ {
		for c := 0; c < half; c++ {
			out[r*half+c] = state[(r+quarter)*side+(c+quarter)]
		}
	}
	return out
}

func TestRoundTripAgainstNaiveReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))

	f := func() bool {
		// n in {1,2,3} -> side in {4,8,16}, exercising both the base
		// case and two levels of the recursive case.
		n := 1 + rng.Intn(3)
		side := 1 << (n + 1)
		state := make([]bool, side*side)
		for i := range state {
			state[i] = rng.Intn(2) == 1
		}

		cache := hashlife.NewCache()
		rows := make([][]bool, side)
		for r := 0; r < side; r++ {
			rows[r] = state[r*side : (r+1)*side]
		}
		world := hashlife.FromSquare(grid.FromArray(rows).View(), cache)
		result, ok := hashlife.Result(world)
		if !ok {
			t.Fatalf("expected a result for side %d", side)
		}

		generations := 1
		if n >= 2 {
			generations = 1 << (n - 1)
		}
		advanced := naiveGenerations(state, side, side, generations)
		wantCenter := expectedCenter(advanced, side)

		half := side / 2
		wantRows := make([][]bool, half)
		for r := 0; r < half; r++ {
			wantRows[r] = wantCenter[r*half : (r+1)*half]
		}
		expected := hashlife.FromSquare(grid.FromArray(wantRows).View(), cache)

		return result == expected
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
		t.Error(err)
	}
}
