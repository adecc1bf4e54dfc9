package grid

import "github.com/agausmann/hashlife"

// Flatten walks a MacroCell tree and flattens it into a Buffer, the
// inverse of hashlife.FromSquare composed with Buffer.View. It uses only
// hashlife's exported surface (Leaf.States, Branch.Children, Side), the
// same boundary FromSquare itself crosses, just in the other direction.
func Flatten(c hashlife.MacroCell) *Buffer {
	side := c.Side()
	state := make([]bool, side*side)
	flattenInto(c, state, side, 0, 0)
	return NewBuffer(state, side, side)
}

func flattenInto(c hashlife.MacroCell, state []bool, stride, rowOff, colOff int) {
	switch v := c.(type) {
	case hashlife.Leaf:
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				state[(rowOff+i)*stride+colOff+j] = v.States[i][j]
			}
		}
	case hashlife.Branch:
		children := v.Children()
		half := v.Side() / 2
		flattenInto(children[0][0], state, stride, rowOff, colOff)
		flattenInto(children[0][1], state, stride, rowOff, colOff+half)
		flattenInto(children[1][0], state, stride, rowOff+half, colOff)
		flattenInto(children[1][1], state, stride, rowOff+half, colOff+half)
	default:
		panic("grid: unreachable macrocell variant")
	}
}
