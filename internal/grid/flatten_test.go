package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agausmann/hashlife"
	"github.com/agausmann/hashlife/internal/grid"
)

func TestFlattenRoundTripsFromSquare(t *testing.T) {
	t.Parallel()
	pattern := [][]bool{
		{true, false, false, true},
		{false, true, true, false},
		{false, true, true, false},
		{true, false, false, true},
	}
	cache := hashlife.NewCache()
	cell := hashlife.FromSquare(grid.FromArray(pattern).View(), cache)

	flat := grid.Flatten(cell)
	v := flat.View()
	for r, row := range pattern {
		for c, want := range row {
			require.Equal(t, want, v.At(r, c), "mismatch at (%d,%d)", r, c)
		}
	}
}
