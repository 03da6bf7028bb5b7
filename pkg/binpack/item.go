package binpack

// Item is a rectangle waiting to be packed. Dimensions are in grid cells
// and must both be positive; the packer treats a zero dimension as a
// programming error and panics.
type Item[ID comparable] struct {
	// W is the item width in cells.
	W int
	// H is the item height in cells.
	H int
	// AllowRotate permits the packer to swap W and H when placing.
	AllowRotate bool
	// ID is opaque to the packer and echoed back on the resulting
	// PlacedItem. Useful to map placements back to caller-side data.
	ID ID
}

// size is the first-fit-decreasing ordering key: the larger dimension.
func (it Item[ID]) size() int {
	if it.W > it.H {
		return it.W
	}
	return it.H
}

// PlacedItem records where an item ended up. The item covers the half-open
// cell ranges [X0,X1) horizontally and [Y0,Y1) vertically. X1 and Y1 already
// account for rotation: a rotated item has X1-X0 equal to the original H.
type PlacedItem[ID comparable] struct {
	X0, Y0  int
	X1, Y1  int
	Rotated bool
	ID      ID
}

// Contains reports whether the placed rectangle, in its chosen rotation,
// covers the cell (x, y).
func (p PlacedItem[ID]) Contains(x, y int) bool {
	return x >= p.X0 && x < p.X1 && y >= p.Y0 && y < p.Y1
}

// Hole describes the size of the largest contiguous free rectangle left in
// a bin after packing. It carries no position. A zero Hole means the bin is
// completely occupied.
type Hole struct {
	Width  int
	Height int
}

// Area is the default hole metric.
func (h Hole) Area() int {
	return h.Width * h.Height
}

// Metric scores a Hole. When several rotation passes run, the bin keeps the
// hole with the highest score seen; greedy hole growth also consults the
// metric to pick its growth axis.
type Metric func(Hole) int
