package binpack

import "github.com/bits-and-blooms/bitset"

// grid is a dense row-major occupancy bitmap. get and set do not bound
// check; callers keep coordinates inside [0,width) x [0,height).
type grid struct {
	width  int
	height int
	bits   *bitset.BitSet
}

func newGrid(width, height int) *grid {
	if width < 1 || height < 1 {
		panic("binpack: bin width and height must both be > 0")
	}
	return &grid{
		width:  width,
		height: height,
		bits:   bitset.New(uint(width * height)),
	}
}

func (g *grid) get(x, y int) bool {
	return g.bits.Test(uint(y*g.width + x))
}

func (g *grid) set(x, y int, value bool) {
	g.bits.SetTo(uint(y*g.width+x), value)
}

// clear resets every cell to free without reallocating.
func (g *grid) clear() {
	g.bits.ClearAll()
}
