package binpack

// region is an axis-aligned rectangle of grid cells with inclusive bounds
// on all four sides. It exists only for the largest-hole finder, which
// grows candidate rectangles one cell strip at a time.
type region struct {
	x0, y0 int
	x1, y1 int // inclusive
}

func (r region) hole() Hole {
	return Hole{
		Width:  r.x1 - r.x0 + 1,
		Height: r.y1 - r.y0 + 1,
	}
}

// obstructed reports whether any cell of the region is occupied.
func (r region) obstructed(g *grid) bool {
	for y := r.y0; y <= r.y1; y++ {
		for x := r.x0; x <= r.x1; x++ {
			if g.get(x, y) {
				return true
			}
		}
	}
	return false
}

// topNeighbors returns the one-cell strip directly above the region.
// The second return value is false when the region touches the top edge.
func (r region) topNeighbors() (region, bool) {
	if r.y0 == 0 {
		return region{}, false
	}
	return region{x0: r.x0, y0: r.y0 - 1, x1: r.x1, y1: r.y0 - 1}, true
}

func (r region) bottomNeighbors(binHeight int) (region, bool) {
	if r.y1+1 == binHeight {
		return region{}, false
	}
	return region{x0: r.x0, y0: r.y1 + 1, x1: r.x1, y1: r.y1 + 1}, true
}

func (r region) leftNeighbors() (region, bool) {
	if r.x0 == 0 {
		return region{}, false
	}
	return region{x0: r.x0 - 1, y0: r.y0, x1: r.x0 - 1, y1: r.y1}, true
}

func (r region) rightNeighbors(binWidth int) (region, bool) {
	if r.x1+1 == binWidth {
		return region{}, false
	}
	return region{x0: r.x1 + 1, y0: r.y0, x1: r.x1 + 1, y1: r.y1}, true
}

func (r region) growLeft() region {
	r.x0--
	return r
}

func (r region) growRight() region {
	r.x1++
	return r
}

func (r region) growUp() region {
	r.y0--
	return r
}

func (r region) growDown() region {
	r.y1++
	return r
}
